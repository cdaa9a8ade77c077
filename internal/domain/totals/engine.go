// Package totals is the default quotation totals engine.
//
// The engine implements quotation.TotalsEngine with two ordered passes:
// SetMissingValues resolves item display fields and price-list rates, then
// CalculateTaxesAndTotals derives the financial fields. Running the second
// pass first would total incomplete lines, so the assembler never does.
package totals

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/core/apperror"
	"storefront/internal/core/types"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/quotation"
)

// Charge is one taxes-and-charges row, a percentage applied on net total.
// The default configuration keeps charges non-negative, so grand total never
// drops below net total.
type Charge struct {
	Description string
	Rate        types.Money
}

// DefaultCharges returns the standard charge template applied to storefront
// quotations.
func DefaultCharges() []Charge {
	return []Charge{
		{Description: "GST", Rate: types.MustMoney("18")},
	}
}

// Engine fills quotation defaults and computes totals.
type Engine struct {
	items   item.Repository
	pricing *pricing.Service
	charges []Charge
}

// NewEngine creates a totals engine with the given charge template.
func NewEngine(items item.Repository, pricingSvc *pricing.Service, charges []Charge) *Engine {
	return &Engine{
		items:   items,
		pricing: pricingSvc,
		charges: charges,
	}
}

var _ quotation.TotalsEngine = (*Engine)(nil)

// SetMissingValues resolves the server-side defaults still embedded in the
// document: item name, UOM and image from the catalog, and a price-list rate
// for lines that arrived without one.
func (e *Engine) SetMissingValues(ctx context.Context, q *quotation.Quotation) error {
	for i := range q.Items {
		line := &q.Items[i]

		it, err := e.items.GetByCode(ctx, line.ItemCode)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewValidation("unknown item").
					WithDetail("itemCode", line.ItemCode)
			}
			return err
		}

		if line.ItemName == "" {
			line.ItemName = it.ItemName
		}
		if line.UOM == "" {
			line.UOM = it.UOM()
		}
		if line.Image == "" {
			line.Image = it.Image
		}

		if line.Rate.IsZero() {
			rate, err := e.pricing.ResolveRate(ctx, line.ItemCode)
			if err != nil {
				return err
			}
			line.Rate = rate
		}
	}
	return nil
}

// CalculateTaxesAndTotals derives line amounts and document totals.
//
//	amount      = qty * rate * (1 - discount%/100)
//	net_total   = sum(amount)
//	discount    = sum(qty * rate) - net_total
//	taxes       = sum(charge% * net_total)
//	grand_total = net_total + taxes
func (e *Engine) CalculateTaxesAndTotals(ctx context.Context, q *quotation.Quotation) error {
	hundred := decimal.NewFromInt(100)

	totalQty := decimal.Zero
	gross := decimal.Zero
	net := decimal.Zero

	for i := range q.Items {
		line := &q.Items[i]

		lineGross := line.Qty.Mul(line.Rate)
		factor := hundred.Sub(line.DiscountPercentage).Div(hundred)
		line.Amount = lineGross.Mul(factor)

		totalQty = totalQty.Add(line.Qty)
		gross = gross.Add(lineGross)
		net = net.Add(line.Amount)
	}

	taxes := decimal.Zero
	for _, charge := range e.charges {
		taxes = taxes.Add(net.Mul(charge.Rate).Div(hundred))
	}

	q.TotalQty = totalQty
	q.NetTotal = net
	q.DiscountAmount = gross.Sub(net)
	q.TotalTaxesAndCharges = taxes
	q.GrandTotal = net.Add(taxes)
	return nil
}
