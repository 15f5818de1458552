package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	currency "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/client"
)

const conversionPrecision = 6

var (
	ErrCurrencyNotFound   = errors.New("rate for the currency is not found")
	ErrProviderNotAllowed = errors.New("provider cannot be used for conversion")
	ErrInvalidRate        = errors.New("provider returned a non positive rate")
)

type (
	// RateClient is the part of client.Client the conversion needs.
	RateClient interface {
		GetSpecificExchangeRates(ctx context.Context, base, symbols string) (client.FiatRateSubset, error)
		GetSpecificBinanceExchangeRates(ctx context.Context, symbol string) (client.PriceQuote, error)
	}

	ConversionService struct {
		Client RateClient
		Logger *zap.Logger
	}
)

var _ currency.Conversion = ConversionService{}

// Convert converts value from one currency into another using the live rate of provider.
// The result is rounded to 6 decimal places.
func (c ConversionService) Convert(ctx context.Context, from, to string, provider currency.Provider, value decimal.Decimal) (decimal.Decimal, error) {
	from, to = strings.ToUpper(strings.TrimSpace(from)), strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return value.Round(conversionPrecision), nil
	}

	var (
		rate decimal.Decimal
		err  error
	)

	switch provider {
	case currency.ExchangeRatesAPIProvider:
		rate, err = c.fiatRate(ctx, from, to)
	case currency.BinanceProvider:
		rate, err = c.binanceRate(ctx, from, to)
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrProviderNotAllowed, provider)
	}

	if err != nil {
		c.logger().Warn("conversion failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.String("provider", string(provider)),
			zap.Error(err),
		)
		return decimal.Zero, err
	}

	if rate.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s_%s = %s", ErrInvalidRate, from, to, rate)
	}

	return convert(value, rate), nil
}

func (c ConversionService) fiatRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rates, err := c.Client.GetSpecificExchangeRates(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := rates.Rate(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s_%s", ErrCurrencyNotFound, from, to)
	}

	return rate, nil
}

func (c ConversionService) binanceRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	quote, err := c.Client.GetSpecificBinanceExchangeRates(ctx, from+to)
	if err != nil {
		var clientErr *client.Error
		// Binance answers unknown symbols with 400.
		if errors.As(err, &clientErr) && errors.Is(err, client.ErrClient) {
			return decimal.Zero, fmt.Errorf("%w: %s_%s: %v", ErrCurrencyNotFound, from, to, err)
		}

		return decimal.Zero, err
	}

	return quote.Price, nil
}

func (c ConversionService) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

func convert(value, rate decimal.Decimal) decimal.Decimal {
	return value.Mul(rate).Round(conversionPrecision)
}
