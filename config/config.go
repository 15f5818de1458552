package config

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	currency "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/client"
	"github.com/malusev998/currency-rates/fetchers"
)

const EnvPrefix = "RATES"

type (
	API struct {
		URL string `mapstructure:"url"`
	}

	HTTP struct {
		Timeout   time.Duration `mapstructure:"timeout"`
		UserAgent string        `mapstructure:"useragent"`
	}

	Fetch struct {
		Concurrency int      `mapstructure:"concurrency"`
		Providers   []string `mapstructure:"providers"`
	}

	Log struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	}

	Config struct {
		ExchangeRatesAPI API   `mapstructure:"exchangeratesapi"`
		Binance          API   `mapstructure:"binance"`
		HTTP             HTTP  `mapstructure:"http"`
		Fetch            Fetch `mapstructure:"fetch"`
		Log              Log   `mapstructure:"log"`
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("exchangeratesapi.url", client.ExchangeRatesAPIURL)
	v.SetDefault("binance.url", client.BinanceAPIURL)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("http.useragent", client.DefaultUserAgent)
	v.SetDefault("fetch.concurrency", fetchers.DefaultConcurrency)
	v.SetDefault("fetch.providers", []string{"exchangeratesapi", "binance"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads the configuration from path (yaml, json or toml, chosen by
// extension). An empty path means defaults only. RATES_* environment
// variables override both, e.g. RATES_BINANCE_URL or RATES_HTTP_TIMEOUT.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("error while resolving config path %s: %w", path, err)
		}

		v.SetConfigFile(absolutePath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error while reading in the config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error while decoding config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout)
	}

	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch.concurrency must be at least 1, got %d", c.Fetch.Concurrency)
	}

	if len(c.Fetch.Providers) == 0 {
		return fmt.Errorf("fetch.providers must name at least one provider")
	}

	if _, err := currency.ConvertToProvidersFromStringSlice(c.Fetch.Providers); err != nil {
		return fmt.Errorf("fetch.providers: %w", err)
	}

	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Logger builds a zap logger from the log section.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	if c.Log.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.Level = level

	return zapConfig.Build()
}

// ClientOptions turns the configuration into client options.
func (c *Config) ClientOptions(logger *zap.Logger) []client.Option {
	return []client.Option{
		client.WithFiatBaseURL(c.ExchangeRatesAPI.URL),
		client.WithBinanceBaseURL(c.Binance.URL),
		client.WithUserAgent(c.HTTP.UserAgent),
		client.WithHTTPClient(&http.Client{Timeout: c.HTTP.Timeout}),
		client.WithLogger(logger),
	}
}

// FetcherConfig returns the shared fetcher settings.
func (c *Config) FetcherConfig(logger *zap.Logger) fetchers.BaseConfig {
	return fetchers.BaseConfig{
		Logger:      logger,
		Concurrency: c.Fetch.Concurrency,
	}
}

// Fetchers builds one fetcher per entry of fetch.providers, in the configured order.
func (c *Config) Fetchers(rateClient *client.Client, logger *zap.Logger) ([]currency.Fetcher, error) {
	providers, err := currency.ConvertToProvidersFromStringSlice(c.Fetch.Providers)
	if err != nil {
		return nil, fmt.Errorf("fetch.providers: %w", err)
	}

	config := c.FetcherConfig(logger)
	result := make([]currency.Fetcher, 0, len(providers))

	for _, provider := range providers {
		result = append(result, fetchers.NewCurrencyFetcher(provider, rateClient, config))
	}

	return result, nil
}
