package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a single FROM_TO rate as reported by a provider.
type Currency struct {
	From      string
	To        string
	Provider  Provider
	Rate      decimal.Decimal
	CreatedAt time.Time
}

// Pair returns the currency pair in FROM_TO form.
func (c Currency) Pair() string {
	return c.From + "_" + c.To
}
