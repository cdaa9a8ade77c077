package moneyfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/core/types"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "INR", amount: "200", code: "INR", want: "₹ 200.00"},
		{name: "USDGrouping", amount: "1234.5", code: "USD", want: "$ 1,234.50"},
		{name: "RoundsToMinorUnit", amount: "99.999", code: "USD", want: "$ 100.00"},
		{name: "Zero", amount: "0", code: "INR", want: "₹ 0.00"},
		{name: "UnknownCurrency", amount: "200", code: "ZZZ", want: "200.00"},
		{name: "EmptyCurrency", amount: "15.5", code: "", want: "15.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(types.MustMoney(tt.amount), tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "₹ 10.00", FormatFloat(10, "INR"))
}
