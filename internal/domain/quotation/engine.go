package quotation

import (
	"context"
)

// TotalsEngine computes the financial fields of a quotation.
//
// The two methods are distinct, ordered, non-reentrant passes: defaults must
// be filled before totals are calculated, otherwise totals would be computed
// over incomplete lines. The assembler is the only caller and always runs
// them in sequence.
type TotalsEngine interface {
	// SetMissingValues resolves server-side defaults still embedded in the
	// document: item display fields and price-list rates for lines that
	// arrived without one.
	SetMissingValues(ctx context.Context, q *Quotation) error

	// CalculateTaxesAndTotals derives line amounts, net total, discount
	// amount, taxes-and-charges total and grand total.
	CalculateTaxesAndTotals(ctx context.Context, q *Quotation) error
}

// Renderer produces a printable export of a quotation. The storefront keeps
// the export path disabled unless a renderer is configured.
type Renderer interface {
	RenderPDF(ctx context.Context, q *Quotation) ([]byte, error)
}
