package currency

import (
	"context"

	"github.com/shopspring/decimal"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, currenciesToFetch []string) ([]Currency, error)
	}

	Conversion interface {
		Convert(ctx context.Context, from, to string, provider Provider, value decimal.Decimal) (decimal.Decimal, error)
	}
)
