// Package currency holds the static currency list and rate table.
// Rates are fixed constants; this is deliberately not a live FX source.
package currency

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultCode is the currency assumed when the user never picked one.
const DefaultCode = "CNY"

// Currency describes one supported currency.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

var currencies = map[string]Currency{
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$"},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£"},
}

// rates maps "FROM_TO" to a fixed exchange rate.
var rates = map[string]decimal.Decimal{
	"CNY_USD": decimal.RequireFromString("0.14"),
	"CNY_GBP": decimal.RequireFromString("0.11"),
	"USD_CNY": decimal.RequireFromString("7.14"),
	"USD_GBP": decimal.RequireFromString("0.79"),
	"GBP_CNY": decimal.RequireFromString("9.09"),
	"GBP_USD": decimal.RequireFromString("1.27"),
}

// List returns the supported currencies sorted by code.
func List() []Currency {
	out := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Rate returns the fixed exchange rate between two supported currencies.
// Same-currency rate is 1.
func Rate(from, to string) (decimal.Decimal, error) {
	if _, ok := currencies[from]; !ok {
		return decimal.Zero, fmt.Errorf("unsupported currency %q", from)
	}
	if _, ok := currencies[to]; !ok {
		return decimal.Zero, fmt.Errorf("unsupported currency %q", to)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, ok := rates[from+"_"+to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no exchange rate for %s to %s", from, to)
	}
	return rate, nil
}

// Convert applies the fixed rate to an amount, rounded to 2 decimals.
func Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rate, err := Rate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Round(2), nil
}
