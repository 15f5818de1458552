package client

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Defaults used by New.
const (
	ExchangeRatesAPIURL = "https://api.exchangeratesapi.io"
	BinanceAPIURL       = "https://api.binance.com"
	DefaultUserAgent    = "currency-rates/1.0"
)

// Client is the rate client. It holds only immutable configuration and is
// safe for concurrent use.
type Client struct {
	// fiatBaseURL is the base URL of the fiat exchange-rate service.
	fiatBaseURL string
	// binanceBaseURL is the base URL of the Binance market-data API.
	binanceBaseURL string
	httpClient     HTTPClient
	// header contains additional headers to be sent with each request.
	header    http.Header
	userAgent string
	logger    *zap.Logger
}

// Option is a configuration option for the Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used to perform requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithFiatBaseURL overrides the fiat exchange-rate service base URL.
func WithFiatBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.fiatBaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithBinanceBaseURL overrides the Binance API base URL.
func WithBinanceBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.binanceBaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithUserAgent sets the User-Agent header. An empty value sends none.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger. Requests and failures are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client. Without options it talks to the public endpoints
// through http.DefaultClient and logs nothing.
func New(options ...Option) *Client {
	c := &Client{
		fiatBaseURL:    ExchangeRatesAPIURL,
		binanceBaseURL: BinanceAPIURL,
		httpClient:     http.DefaultClient,
		header:         http.Header{},
		userAgent:      DefaultUserAgent,
		logger:         zap.NewNop(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}
