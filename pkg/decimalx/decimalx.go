// Package decimalx holds small helpers around shopspring/decimal.
package decimalx

import "github.com/shopspring/decimal"

// MustFromString parses s or panics. For literals in tests and wiring.
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
