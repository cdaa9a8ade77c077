// Package moneyfmt renders monetary amounts for display.
//
// Formatting happens exactly once, at response shaping time; stored values
// stay numeric. Amounts are rounded to the currency's standard minor-unit
// precision before rendering.
package moneyfmt

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"storefront/internal/core/types"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with the currency's narrow symbol, digit grouping
// and minor-unit precision, e.g. Format(200, "INR") == "₹ 200.00".
//
// An unknown currency code degrades to a plain two-decimal string rather
// than failing the whole response.
func Format(amount types.Money, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2)
	}

	scale, _ := currency.Cash.Rounding(unit)
	rounded := amount.Round(int32(scale))

	sym := printer.Sprint(currency.NarrowSymbol(unit))
	num := printer.Sprintf("%v", number.Decimal(
		rounded.InexactFloat64(),
		number.Scale(scale),
		number.MinFractionDigits(scale),
	))
	return sym + " " + num
}

// FormatFloat is a convenience wrapper for values that arrive as floats.
func FormatFloat(amount float64, code string) string {
	return Format(types.NewMoney(amount), code)
}
