// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// Floats lose precision; prefer MustMoney for literals.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Qty is an order/line quantity. Quantities share the decimal representation
// with Money so that qty*rate products stay exact.
type Qty = decimal.Decimal

// NewQty creates a Qty from a float.
func NewQty(f float64) Qty {
	return decimal.NewFromFloat(f)
}
