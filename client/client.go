// Package client talks to the fiat exchange-rate service (api.exchangeratesapi.io)
// and to the Binance spot market-data API (api.binance.com).
package client

import "net/http"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=client_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
