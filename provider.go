package currency

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ExchangeRatesAPIProvider Provider = "ExchangeRatesAPI"
	BinanceProvider          Provider = "Binance"
	EmptyProvider            Provider = ""
)

func ConvertToProvidersFromStringSlice(strings []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "exchangeratesapi":
		return ExchangeRatesAPIProvider, nil
	case "binance":
		return BinanceProvider, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}
