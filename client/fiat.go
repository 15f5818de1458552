package client

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const fiatLatestPath = "/latest"

// GetFiatCurrencies returns the latest rate table of the fiat service
// for its default base currency.
func (c *Client) GetFiatCurrencies(ctx context.Context) (FiatRateTable, error) {
	return c.fiatLatest(ctx, opGetFiatCurrencies, nil)
}

// GetSpecificExchangeRates returns the latest rates of symbols, a comma separated
// list of currency codes (see JoinSymbols), relative to base.
func (c *Client) GetSpecificExchangeRates(ctx context.Context, base, symbols string) (FiatRateSubset, error) {
	base = strings.TrimSpace(base)
	symbols = strings.TrimSpace(symbols)

	if base == "" || symbols == "" {
		return FiatRateSubset{}, &Error{
			Op:      opGetSpecificExchangeRates,
			Kind:    ErrInvalidArgument,
			Message: "base and symbols are required",
		}
	}

	return c.fiatLatest(ctx, opGetSpecificExchangeRates, url.Values{
		"base":    []string{base},
		"symbols": []string{symbols},
	})
}

func (c *Client) fiatLatest(ctx context.Context, op string, query url.Values) (FiatRateTable, error) {
	rawURL := buildURL(c.fiatBaseURL, fiatLatestPath, query)

	body, err := c.get(ctx, op, rawURL, parseFiatError)
	if err != nil {
		return FiatRateTable{}, err
	}

	var res fiatResponse
	if err := c.decode(op, rawURL, body, &res); err != nil {
		return FiatRateTable{}, err
	}

	if res.failed() {
		e := &Error{Op: op, URL: rawURL, Kind: ErrAPI}
		if res.Error != nil {
			e.Code, e.Message = res.Error.Code, res.Error.Message
		}

		c.logger.Debug("fiat service reported an error", zap.String("op", op), zap.Error(e))
		return FiatRateTable{}, e
	}

	table := res.FiatRateTable
	table.Raw = body

	return table, nil
}
