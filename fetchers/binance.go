package fetchers

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	currency "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/client"
)

type BinanceFetcher struct {
	BaseConfig
	API BinanceAPI
}

type binancePair struct {
	from, to string
	symbol   string
}

// resolve maps FROM_TO pairs onto listed Binance symbols. Pairs that are not
// listed or not trading are reported together.
func (b BinanceFetcher) resolve(info client.ExchangeInfo, currenciesToFetch []string) ([]binancePair, error) {
	index := make(map[[2]string]client.SymbolInfo, len(info.Symbols))
	for _, s := range info.Symbols {
		index[[2]string{s.BaseAsset, s.QuoteAsset}] = s
	}

	var errs error
	pairs := make([]binancePair, 0, len(currenciesToFetch))

	for _, c := range currenciesToFetch {
		from, to, err := splitPair(c)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		symbol, ok := index[[2]string{from, to}]
		switch {
		case !ok:
			errs = multierr.Append(errs, fmt.Errorf("%w: %s_%s", ErrPairNotListed, from, to))
		case !symbol.Trading():
			errs = multierr.Append(errs, fmt.Errorf("%w: %s (%s)", ErrPairNotTrading, symbol.Symbol, symbol.Status))
		default:
			pairs = append(pairs, binancePair{from: from, to: to, symbol: symbol.Symbol})
		}
	}

	return pairs, errs
}

// Fetch returns the latest prices of the given FROM_TO pairs, e.g. BTC_USDT.
// Every pair is attempted; all failures are returned combined.
// A nil ctx means context.Background.
func (b BinanceFetcher) Fetch(ctx context.Context, currenciesToFetch []string) ([]currency.Currency, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := b.logger().With(zap.String("provider", string(currency.BinanceProvider)))

	if len(currenciesToFetch) == 0 {
		return []currency.Currency{}, nil
	}

	info, err := b.API.GetBinanceCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := b.resolve(info, currenciesToFetch)
	if err != nil {
		logger.Warn("cannot resolve pairs", zap.Error(err))
		return nil, err
	}

	createdAt := b.now()
	result := make([]currency.Currency, len(pairs))
	errs := make([]error, len(pairs))

	var group errgroup.Group
	group.SetLimit(b.concurrency())

	for i, pair := range pairs {
		group.Go(func() error {
			quote, err := b.API.GetSpecificBinanceExchangeRates(ctx, pair.symbol)
			if err != nil {
				errs[i] = err
				return nil
			}

			result[i] = currency.Currency{
				From:      pair.from,
				To:        pair.to,
				Provider:  currency.BinanceProvider,
				Rate:      quote.Price,
				CreatedAt: createdAt,
			}

			return nil
		})
	}

	_ = group.Wait()

	if err := multierr.Combine(errs...); err != nil {
		logger.Warn("fetching prices failed", zap.Error(err))
		return nil, err
	}

	logger.Debug("fetched prices", zap.Int("count", len(result)))

	return result, nil
}
