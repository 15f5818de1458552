package fetchers

import (
	currency "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/client"
)

// NewCurrencyFetcher returns the fetcher for provider, or nil when the provider is unknown.
func NewCurrencyFetcher(provider currency.Provider, c *client.Client, config BaseConfig) currency.Fetcher {
	switch provider {
	case currency.ExchangeRatesAPIProvider:
		return ExchangeRatesAPIFetcher{
			BaseConfig: config,
			API:        c,
		}
	case currency.BinanceProvider:
		return BinanceFetcher{
			BaseConfig: config,
			API:        c,
		}
	}

	return nil
}
