// Package quotation provides the Quotation document and its assembly
// pipeline: merging client payloads with resolved defaults, computing totals
// and gating persistence on the document lifecycle.
package quotation

import (
	"context"
	"time"

	"storefront/internal/core/apperror"
	"storefront/internal/core/entity"
	"storefront/internal/core/id"
	"storefront/internal/core/types"
)

// Quotation is a draft commercial offer to a customer.
//
// Totals are always derived server-side; the client never supplies them.
// They are recomputed on every assembly because items, currency or discount
// inputs may have changed.
type Quotation struct {
	entity.Document

	// QuotationTo is the party type; the storefront only quotes customers.
	QuotationTo string `db:"quotation_to" json:"quotationTo"`

	// PartyName is the customer code, resolved from the session user.
	PartyName    string `db:"party_name" json:"partyName"`
	CustomerName string `db:"customer_name" json:"customerName"`

	// ValidTill is the offer validity date.
	ValidTill time.Time `db:"valid_till" json:"validTill"`

	// Currency of all amounts on this document.
	Currency string `db:"currency" json:"currency"`

	// Derived totals.
	TotalQty             types.Qty   `db:"total_qty" json:"totalQty"`
	NetTotal             types.Money `db:"net_total" json:"netTotal"`
	DiscountAmount       types.Money `db:"discount_amount" json:"discountAmount"`
	TotalTaxesAndCharges types.Money `db:"total_taxes_and_charges" json:"totalTaxesAndCharges"`
	GrandTotal           types.Money `db:"grand_total" json:"grandTotal"`

	// Free-text terms and conditions.
	Terms string `db:"terms" json:"terms,omitempty"`

	// ShippingAddress may contain markup; it is stripped at response time.
	ShippingAddress string `db:"shipping_address" json:"shippingAddress,omitempty"`

	ContactEmail  string `db:"contact_email" json:"contactEmail,omitempty"`
	ContactMobile string `db:"contact_mobile" json:"contactMobile,omitempty"`

	// Items is the table part, exclusively owned by this quotation.
	Items []Item `db:"-" json:"items"`
}

// Item is one quotation line.
//
// Warehouse and ValidTill are always overwritten by the assembler from the
// storefront defaults and the parent's validity; client-supplied values for
// them are discarded.
type Item struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	Idx    int   `db:"idx" json:"idx"`

	ItemCode string `db:"item_code" json:"itemCode"`
	ItemName string `db:"item_name" json:"itemName"`

	Qty  types.Qty   `db:"qty" json:"qty"`
	Rate types.Money `db:"rate" json:"rate"`

	// DiscountPercentage reduces the line amount (0..100).
	DiscountPercentage types.Money `db:"discount_percentage" json:"discountPercentage"`

	// Amount is derived: qty * rate * (1 - discount/100).
	Amount types.Money `db:"amount" json:"amount"`

	UOM       string    `db:"uom" json:"uom"`
	Warehouse string    `db:"warehouse" json:"warehouse"`
	ValidTill time.Time `db:"valid_till" json:"validTill"`
	Image     string    `db:"image" json:"image,omitempty"`
}

// New creates a draft quotation for the given company.
func New(company string) *Quotation {
	return &Quotation{
		Document:    entity.NewDocument(company),
		QuotationTo: "Customer",
		Items:       make([]Item, 0),
	}
}

// Validate implements entity.Validatable.
func (q *Quotation) Validate(ctx context.Context) error {
	if err := q.Document.Validate(ctx); err != nil {
		return err
	}
	if q.PartyName == "" {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "partyName")
	}
	if q.Currency == "" {
		return apperror.NewMissingCurrency()
	}
	for i, line := range q.Items {
		if line.ItemCode == "" {
			return apperror.NewValidation("item code is required").
				WithDetail("field", "items").
				WithDetail("idx", i+1)
		}
		if !line.Qty.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("idx", i+1)
		}
	}
	return nil
}

// --- Client payload ---

// Payload is the whitelist of client-settable quotation fields. Anything
// outside it (totals, company, party) is server-resolved; unknown fields in
// the request body are ignored by the transport layer, never merged blindly.
//
// Update semantics: nil pointers leave the existing value untouched, set
// fields overwrite it.
type Payload struct {
	TransactionDate *time.Time
	ValidTill       *time.Time
	Currency        string
	Terms           *string
	ShippingAddress *string
	ContactEmail    *string
	ContactMobile   *string

	// Items, when non-nil, replaces the whole table part.
	Items []ItemPayload
}

// ItemPayload is one client-submitted line.
//
// Warehouse and ValidTill are accepted for wire compatibility with the
// mobile client but discarded on assembly.
type ItemPayload struct {
	ItemCode           string
	Qty                types.Qty
	Rate               *types.Money
	DiscountPercentage types.Money
	Warehouse          string
	ValidTill          *time.Time
}

// ApplyTo merges the payload onto a quotation. Listed fields are
// overwritten; fields the payload leaves nil are preserved.
func (p Payload) ApplyTo(q *Quotation) {
	if p.TransactionDate != nil {
		q.TransactionDate = *p.TransactionDate
	}
	if p.Currency != "" {
		q.Currency = p.Currency
	}
	if p.Terms != nil {
		q.Terms = *p.Terms
	}
	if p.ShippingAddress != nil {
		q.ShippingAddress = *p.ShippingAddress
	}
	if p.ContactEmail != nil {
		q.ContactEmail = *p.ContactEmail
	}
	if p.ContactMobile != nil {
		q.ContactMobile = *p.ContactMobile
	}

	if p.Items != nil {
		items := make([]Item, len(p.Items))
		for i, line := range p.Items {
			items[i] = Item{
				LineID:             id.New(),
				Idx:                i + 1,
				ItemCode:           line.ItemCode,
				Qty:                line.Qty,
				DiscountPercentage: line.DiscountPercentage,
			}
			if line.Rate != nil {
				items[i].Rate = *line.Rate
			}
		}
		q.Items = items
	}
}

// Attachment is a file attached to a quotation.
type Attachment struct {
	FileName string `db:"file_name" json:"fileName"`
	FileURL  string `db:"file_url" json:"fileUrl"`
}
