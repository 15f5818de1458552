package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency-rates/client"
)

const exchangeInfoBody = `{
  "timezone": "UTC",
  "serverTime": 1602842400000,
  "rateLimits": [],
  "symbols": [
    {
      "symbol": "ETHBTC",
      "status": "TRADING",
      "baseAsset": "ETH",
      "quoteAsset": "BTC",
      "filters": [
        {"filterType": "PRICE_FILTER", "minPrice": "0.00000100", "maxPrice": "100000.00000000", "tickSize": "0.00000100"},
        {"filterType": "LOT_SIZE", "minQty": "0.00100000", "maxQty": "100000.00000000", "stepSize": "0.00100000"}
      ]
    },
    {"symbol": "BTCUSDT", "status": "TRADING", "baseAsset": "BTC", "quoteAsset": "USDT", "filters": []},
    {"symbol": "LUNAUSDT", "status": "BREAK", "baseAsset": "LUNA", "quoteAsset": "USDT", "filters": []}
  ]
}`

func binanceServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return client.New(client.WithBinanceBaseURL(server.URL))
}

func TestGetBinanceCurrencies(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
		asserts.Equal("/api/v3/exchangeInfo", r.URL.Path)
		_, _ = w.Write([]byte(exchangeInfoBody))
	})

	info, err := c.GetBinanceCurrencies(context.Background())

	asserts.NoError(err)
	asserts.Equal("UTC", info.Timezone)
	asserts.Equal(int64(1602842400000), info.ServerTime)
	asserts.Len(info.Symbols, 3)
	asserts.JSONEq(exchangeInfoBody, string(info.Raw))

	ethbtc, ok := info.Symbol("ethbtc")
	asserts.True(ok)
	asserts.True(ethbtc.Trading())
	asserts.Equal("ETH", ethbtc.BaseAsset)
	asserts.Equal("BTC", ethbtc.QuoteAsset)
	asserts.Len(ethbtc.Filters, 2)
	asserts.Equal("0.00000100", ethbtc.Filters[0].TickSize)
	asserts.Equal("0.00100000", ethbtc.Filters[1].StepSize)

	luna, ok := info.Symbol("LUNAUSDT")
	asserts.True(ok)
	asserts.False(luna.Trading())

	_, ok = info.Symbol("DOGEEUR")
	asserts.False(ok)
}

func TestGetSpecificBinanceExchangeRates(t *testing.T) {
	t.Parallel()

	t.Run("PriceQuote", func(t *testing.T) {
		t.Parallel()
		asserts := require.New(t)

		c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
			asserts.Equal("/api/v3/ticker/price", r.URL.Path)
			asserts.Equal("symbol=BTCUSDT", r.URL.RawQuery)

			_, _ = w.Write([]byte(`{"symbol":"BTCUSDT","price":"11372.83000000"}`))
		})

		quote, err := c.GetSpecificBinanceExchangeRates(context.Background(), "BTCUSDT")

		asserts.NoError(err)
		asserts.Equal("BTCUSDT", quote.Symbol)
		asserts.True(decimal.RequireFromString("11372.83").Equal(quote.Price))
		asserts.Equal(`{"symbol":"BTCUSDT","price":"11372.83000000"}`, string(quote.Raw))
	})

	t.Run("InvalidSymbol", func(t *testing.T) {
		t.Parallel()
		asserts := require.New(t)

		c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
		})

		_, err := c.GetSpecificBinanceExchangeRates(context.Background(), "NOTASYMBOL")

		var clientErr *client.Error
		asserts.ErrorAs(err, &clientErr)
		asserts.ErrorIs(err, client.ErrClient)
		asserts.Equal("-1121", clientErr.Code)
		asserts.Equal("Invalid symbol.", clientErr.Message)
		asserts.Equal(
			"GetSpecificBinanceExchangeRates: client error (status 400): [-1121] Invalid symbol.",
			clientErr.Error(),
		)
	})

	t.Run("EmptySymbol", func(t *testing.T) {
		t.Parallel()

		c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := c.GetSpecificBinanceExchangeRates(context.Background(), " ")
		require.ErrorIs(t, err, client.ErrInvalidArgument)
	})

	t.Run("UnexpectedShape", func(t *testing.T) {
		t.Parallel()

		c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"symbol":"BTCUSDT","price":"1"}]`))
		})

		_, err := c.GetSpecificBinanceExchangeRates(context.Background(), "BTCUSDT")
		require.ErrorIs(t, err, client.ErrDecode)
	})

	t.Run("Maintenance", func(t *testing.T) {
		t.Parallel()

		c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.GetBinanceCurrencies(context.Background())
		require.ErrorIs(t, err, client.ErrServer)
	})

	t.Run("Redirect", func(t *testing.T) {
		t.Parallel()

		c := binanceServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotModified)
		})

		_, err := c.GetSpecificBinanceExchangeRates(context.Background(), "BTCUSDT")
		require.ErrorIs(t, err, client.ErrUnknown)
	})
}
