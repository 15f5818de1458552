package fetchers

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	currency "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/client"
)

type ExchangeRatesAPIFetcher struct {
	BaseConfig
	API ExchangeRatesAPI
}

// PrepareISOCurrencies groups FROM_TO pairs by their base currency,
// keeping the order in which the quote currencies first appear.
// Repeated pairs are kept once.
func (e ExchangeRatesAPIFetcher) PrepareISOCurrencies(currencies []string) (map[string][]string, error) {
	mappedCurrencies := make(map[string][]string)

	for _, c := range currencies {
		from, to, err := splitPair(c)
		if err != nil {
			return nil, err
		}

		if slices.Contains(mappedCurrencies[from], to) {
			continue
		}

		mappedCurrencies[from] = append(mappedCurrencies[from], to)
	}

	return mappedCurrencies, nil
}

// Fetch returns the rates of the given FROM_TO pairs. With no pairs it returns
// the whole latest table of the service. A nil ctx means context.Background.
func (e ExchangeRatesAPIFetcher) Fetch(ctx context.Context, currenciesToFetch []string) ([]currency.Currency, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := e.logger().With(zap.String("provider", string(currency.ExchangeRatesAPIProvider)))

	if len(currenciesToFetch) == 0 {
		table, err := e.API.GetFiatCurrencies(ctx)
		if err != nil {
			return nil, err
		}

		result := e.toCurrencies(table, nil)
		logger.Debug("fetched latest table", zap.String("base", table.Base), zap.Int("count", len(result)))

		return result, nil
	}

	currencies, err := e.PrepareISOCurrencies(currenciesToFetch)
	if err != nil {
		return nil, err
	}

	var mutex sync.Mutex
	result := make([]currency.Currency, 0, len(currenciesToFetch))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency())

	for base, curs := range currencies {
		group.Go(func() error {
			rates, err := e.API.GetSpecificExchangeRates(ctx, base, client.JoinSymbols(curs...))
			if err != nil {
				return err
			}

			// The service answers with the requested base, but do not rely on it being echoed.
			if rates.Base == "" {
				rates.Base = base
			}

			for _, to := range curs {
				if _, ok := rates.Rate(to); !ok {
					return fmt.Errorf("%w: %s_%s", ErrPairNotListed, base, to)
				}
			}

			fetched := e.toCurrencies(rates, curs)

			mutex.Lock()
			result = append(result, fetched...)
			mutex.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Warn("fetching rates failed", zap.Error(err))
		return nil, err
	}

	sortCurrencies(result)
	logger.Debug("fetched rates", zap.Int("count", len(result)))

	return result, nil
}

// toCurrencies flattens a rate table. When only is not nil, just those
// symbols are kept.
func (e ExchangeRatesAPIFetcher) toCurrencies(table client.FiatRateTable, only []string) []currency.Currency {
	createdAt := e.now()
	currencies := make([]currency.Currency, 0, len(table.Rates))

	appendRate := func(to string) {
		rate, ok := table.Rate(to)
		if !ok {
			return
		}

		currencies = append(currencies, currency.Currency{
			From:      table.Base,
			To:        to,
			Provider:  currency.ExchangeRatesAPIProvider,
			Rate:      rate,
			CreatedAt: createdAt,
		})
	}

	if only == nil {
		for to := range table.Rates {
			appendRate(to)
		}
		sortCurrencies(currencies)
	} else {
		for _, to := range only {
			appendRate(to)
		}
	}

	return currencies
}

func sortCurrencies(currencies []currency.Currency) {
	sort.SliceStable(currencies, func(i, j int) bool {
		return currencies[i].Pair() < currencies[j].Pair()
	})
}
