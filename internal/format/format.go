// Package format rounds prices and quantities to the decimal precision
// each symbol's filters accept. All rounding happens here, at the
// exchange boundary, so planners can work with raw floats.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PricePrecision returns the number of price decimals for a symbol.
func PricePrecision(symbol string) int32 {
	switch {
	case strings.Contains(symbol, "BTC"), strings.Contains(symbol, "ETH"):
		return 2
	default:
		return 4
	}
}

// QuantityPrecision returns the number of quantity decimals for a symbol.
func QuantityPrecision(symbol string) int32 {
	switch {
	case strings.Contains(symbol, "BTC"):
		return 3
	case strings.Contains(symbol, "ETH"):
		return 2
	default:
		return 1
	}
}

// Price rounds a price to the symbol's precision.
func Price(price float64, symbol string) float64 {
	return round(price, PricePrecision(symbol))
}

// Quantity rounds a quantity to the symbol's precision.
func Quantity(qty float64, symbol string) float64 {
	return round(qty, QuantityPrecision(symbol))
}

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
