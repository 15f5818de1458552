package fetchers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/malusev998/currency-rates/client"
)

type (
	MockExchangeRatesAPI struct {
		mock.Mock
	}

	MockBinanceAPI struct {
		mock.Mock
	}
)

func (m *MockExchangeRatesAPI) GetFiatCurrencies(ctx context.Context) (client.FiatRateTable, error) {
	args := m.Called(ctx)

	return args.Get(0).(client.FiatRateTable), args.Error(1)
}

func (m *MockExchangeRatesAPI) GetSpecificExchangeRates(ctx context.Context, base, symbols string) (client.FiatRateSubset, error) {
	args := m.Called(ctx, base, symbols)

	return args.Get(0).(client.FiatRateSubset), args.Error(1)
}

func (m *MockBinanceAPI) GetBinanceCurrencies(ctx context.Context) (client.ExchangeInfo, error) {
	args := m.Called(ctx)

	return args.Get(0).(client.ExchangeInfo), args.Error(1)
}

func (m *MockBinanceAPI) GetSpecificBinanceExchangeRates(ctx context.Context, symbol string) (client.PriceQuote, error) {
	args := m.Called(ctx, symbol)

	return args.Get(0).(client.PriceQuote), args.Error(1)
}
