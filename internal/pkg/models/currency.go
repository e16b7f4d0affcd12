package models

import "strings"

// Currency is one of the fixed set of supported settlement units.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// DefaultCurrency substitutes for stored records whose currency code no
// longer parses. Input validation never falls back to it.
const DefaultCurrency = USD

type currencyInfo struct {
	symbol      string
	displayName string
}

var currencies = map[Currency]currencyInfo{
	USD: {symbol: "$", displayName: "US Dollar"},
	EUR: {symbol: "€", displayName: "Euro"},
	GBP: {symbol: "£", displayName: "British Pound"},
}

// Code returns the canonical three-letter currency code.
func (c Currency) Code() string {
	return string(c)
}

// Symbol returns the display glyph for the currency.
func (c Currency) Symbol() string {
	return currencies[c].symbol
}

// DisplayName returns the human-readable currency name.
func (c Currency) DisplayName() string {
	return currencies[c].displayName
}

// CurrencyFromCode resolves a currency code case-insensitively. Unknown
// codes return false; callers on the input path treat that as a
// validation failure.
func CurrencyFromCode(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(code))
	_, ok := currencies[c]
	return c, ok
}

// CurrencyFromCodeOrDefault resolves a currency code stored on a record,
// substituting DefaultCurrency when the code no longer parses. Legacy or
// corrupt records are kept rather than dropped.
func CurrencyFromCodeOrDefault(code string) Currency {
	if c, ok := CurrencyFromCode(code); ok {
		return c
	}
	return DefaultCurrency
}

// SupportedCurrencies returns the closed set of currencies in a stable
// order.
func SupportedCurrencies() []Currency {
	return []Currency{USD, EUR, GBP}
}
