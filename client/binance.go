package client

import (
	"context"
	"net/url"
	"strings"
)

const (
	binanceExchangeInfoPath = "/api/v3/exchangeInfo"
	binanceTickerPricePath  = "/api/v3/ticker/price"
)

// GetBinanceCurrencies returns the exchange information of Binance,
// including every listed symbol.
func (c *Client) GetBinanceCurrencies(ctx context.Context) (ExchangeInfo, error) {
	rawURL := buildURL(c.binanceBaseURL, binanceExchangeInfoPath, nil)

	body, err := c.get(ctx, opGetBinanceCurrencies, rawURL, parseBinanceError)
	if err != nil {
		return ExchangeInfo{}, err
	}

	var info ExchangeInfo
	if err := c.decode(opGetBinanceCurrencies, rawURL, body, &info); err != nil {
		return ExchangeInfo{}, err
	}

	info.Raw = body

	return info, nil
}

// GetSpecificBinanceExchangeRates returns the latest price of a trading pair, e.g. BTCUSDT.
func (c *Client) GetSpecificBinanceExchangeRates(ctx context.Context, symbol string) (PriceQuote, error) {
	symbol = strings.TrimSpace(symbol)

	// Without a symbol the endpoint answers with every ticker.
	if symbol == "" {
		return PriceQuote{}, &Error{
			Op:      opGetSpecificBinanceExchangeRates,
			Kind:    ErrInvalidArgument,
			Message: "symbol is required",
		}
	}

	rawURL := buildURL(c.binanceBaseURL, binanceTickerPricePath, url.Values{
		"symbol": []string{symbol},
	})

	body, err := c.get(ctx, opGetSpecificBinanceExchangeRates, rawURL, parseBinanceError)
	if err != nil {
		return PriceQuote{}, err
	}

	var quote PriceQuote
	if err := c.decode(opGetSpecificBinanceExchangeRates, rawURL, body, &quote); err != nil {
		return PriceQuote{}, err
	}

	quote.Raw = body

	return quote, nil
}
