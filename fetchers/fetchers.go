package fetchers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/malusev998/currency-rates/client"
)

const DefaultConcurrency = 4

type (
	// ExchangeRatesAPI is the part of client.Client used by ExchangeRatesAPIFetcher.
	ExchangeRatesAPI interface {
		GetFiatCurrencies(ctx context.Context) (client.FiatRateTable, error)
		GetSpecificExchangeRates(ctx context.Context, base, symbols string) (client.FiatRateSubset, error)
	}

	// BinanceAPI is the part of client.Client used by BinanceFetcher.
	BinanceAPI interface {
		GetBinanceCurrencies(ctx context.Context) (client.ExchangeInfo, error)
		GetSpecificBinanceExchangeRates(ctx context.Context, symbol string) (client.PriceQuote, error)
	}

	BaseConfig struct {
		Logger      *zap.Logger
		Concurrency int
		// Now stamps CreatedAt on fetched currencies, time.Now when nil.
		Now func() time.Time
	}
)

var (
	ErrInvalidPair    = errors.New("currency pair must be in FROM_TO format")
	ErrPairNotListed  = errors.New("currency pair is not listed")
	ErrPairNotTrading = errors.New("currency pair is not trading")
)

func (b BaseConfig) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}

	return b.Logger
}

func (b BaseConfig) concurrency() int {
	if b.Concurrency <= 0 {
		return DefaultConcurrency
	}

	return b.Concurrency
}

func (b BaseConfig) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}

	return b.Now()
}

// splitPair splits "EUR_USD" into "EUR" and "USD".
func splitPair(pair string) (string, string, error) {
	isoCurrencies := strings.Split(strings.TrimSpace(pair), "_")

	if len(isoCurrencies) != 2 || isoCurrencies[0] == "" || isoCurrencies[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPair, pair)
	}

	return strings.ToUpper(isoCurrencies[0]), strings.ToUpper(isoCurrencies[1]), nil
}
