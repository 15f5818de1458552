package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// FiatRateTable is the answer of the fiat service "latest" endpoint.
	// Raw keeps the body exactly as it was received.
	FiatRateTable struct {
		Base  string                     `json:"base"`
		Date  string                     `json:"date"`
		Rates map[string]decimal.Decimal `json:"rates"`
		Raw   json.RawMessage            `json:"-"`
	}

	// FiatRateSubset is a FiatRateTable restricted to one base and a symbol list.
	FiatRateSubset = FiatRateTable

	// ExchangeInfo lists the symbols tradable on Binance.
	ExchangeInfo struct {
		Timezone   string          `json:"timezone"`
		ServerTime int64           `json:"serverTime"`
		Symbols    []SymbolInfo    `json:"symbols"`
		Raw        json.RawMessage `json:"-"`
	}

	// SymbolInfo describes one listed trading pair.
	SymbolInfo struct {
		Symbol     string         `json:"symbol"`
		Status     string         `json:"status"`
		BaseAsset  string         `json:"baseAsset"`
		QuoteAsset string         `json:"quoteAsset"`
		Filters    []SymbolFilter `json:"filters"`
	}

	// SymbolFilter is a trading rule. Only the fields of the common filter
	// types are decoded; the rest stays in ExchangeInfo.Raw.
	SymbolFilter struct {
		FilterType  string `json:"filterType"`
		MinPrice    string `json:"minPrice,omitempty"`
		MaxPrice    string `json:"maxPrice,omitempty"`
		TickSize    string `json:"tickSize,omitempty"`
		MinQty      string `json:"minQty,omitempty"`
		MaxQty      string `json:"maxQty,omitempty"`
		StepSize    string `json:"stepSize,omitempty"`
		MinNotional string `json:"minNotional,omitempty"`
	}

	// PriceQuote is the latest price of a single trading pair.
	PriceQuote struct {
		Symbol string          `json:"symbol"`
		Price  decimal.Decimal `json:"price"`
		Raw    json.RawMessage `json:"-"`
	}
)

// SymbolStatusTrading is the status of a symbol open for trading.
const SymbolStatusTrading = "TRADING"

// Rate returns the rate for the given symbol.
func (t FiatRateTable) Rate(symbol string) (decimal.Decimal, bool) {
	rate, ok := t.Rates[strings.ToUpper(symbol)]
	return rate, ok
}

// Symbol looks a symbol up by name.
func (e ExchangeInfo) Symbol(name string) (SymbolInfo, bool) {
	name = strings.ToUpper(name)

	for _, s := range e.Symbols {
		if s.Symbol == name {
			return s, true
		}
	}

	return SymbolInfo{}, false
}

// Trading reports whether the symbol is open for trading.
func (s SymbolInfo) Trading() bool {
	return s.Status == SymbolStatusTrading
}

// JoinSymbols builds the comma separated symbol list GetSpecificExchangeRates expects.
func JoinSymbols(codes ...string) string {
	cleaned := make([]string, 0, len(codes))

	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, strings.ToUpper(c))
		}
	}

	return strings.Join(cleaned, ",")
}

type (
	// fiatResponse covers both the legacy {"error":"text"} body and the
	// {"success":false,"error":{...}} body of the fiat service.
	fiatResponse struct {
		FiatRateTable
		Success *bool          `json:"success,omitempty"`
		Error   *fiatErrorBody `json:"error,omitempty"`
	}

	fiatErrorBody struct {
		Code    string
		Message string
	}

	binanceErrorBody struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
)

func (f *fiatErrorBody) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		f.Message = text
		return nil
	}

	var body struct {
		Code interface{} `json:"code"`
		Type string      `json:"type"`
		Info string      `json:"info"`
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	f.Code = body.Type
	if f.Code == "" && body.Code != nil {
		f.Code = fmt.Sprint(body.Code)
	}

	f.Message = body.Info
	if f.Message == "" {
		f.Message = body.Type
	}

	return nil
}

func (f fiatResponse) failed() bool {
	return f.Error != nil || (f.Success != nil && !*f.Success)
}

func parseFiatError(body []byte) (code, message string) {
	var res fiatResponse
	if err := json.Unmarshal(body, &res); err != nil || res.Error == nil {
		return "", ""
	}

	return res.Error.Code, res.Error.Message
}

func parseBinanceError(body []byte) (code, message string) {
	var res binanceErrorBody
	if err := json.Unmarshal(body, &res); err != nil || res.Msg == "" {
		return "", ""
	}

	return fmt.Sprint(res.Code), res.Msg
}
