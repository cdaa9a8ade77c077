package dto

import (
	"time"

	"storefront/internal/core/apperror"
	"storefront/internal/core/types"
	"storefront/internal/domain/quotation"
	"storefront/pkg/htmltext"
	"storefront/pkg/moneyfmt"
)

// --- Requests ---

// QuotationRequest is the client payload for create/update/totals. Only the
// listed fields are merged; anything else in the body is dropped by binding.
type QuotationRequest struct {
	TransactionDate string  `json:"transaction_date"`
	ValidTill       string  `json:"valid_till"`
	Currency        string  `json:"currency"`
	Terms           *string `json:"terms"`
	ShippingAddress *string `json:"shipping_address"`
	ContactEmail    *string `json:"contact_email"`
	ContactMobile   *string `json:"contact_mobile"`

	Items []QuotationItemRequest `json:"items"`
}

// QuotationItemRequest is one submitted line. Warehouse and valid_till are
// accepted for wire compatibility but ignored; the assembler sets them.
type QuotationItemRequest struct {
	ItemCode           string       `json:"item_code" binding:"required"`
	Qty                types.Qty    `json:"qty" binding:"required"`
	Rate               *types.Money `json:"rate"`
	DiscountPercentage types.Money  `json:"discount_percentage"`
	Warehouse          string       `json:"warehouse"`
	ValidTill          string       `json:"valid_till"`
}

// ToPayload converts the request into the assembler's whitelist payload.
func (r QuotationRequest) ToPayload() (quotation.Payload, error) {
	p := quotation.Payload{
		Currency:        r.Currency,
		Terms:           r.Terms,
		ShippingAddress: r.ShippingAddress,
		ContactEmail:    r.ContactEmail,
		ContactMobile:   r.ContactMobile,
	}

	if r.TransactionDate != "" {
		d, err := time.Parse(inputDateLayout, r.TransactionDate)
		if err != nil {
			return p, apperror.NewValidation("invalid transaction_date").
				WithDetail("value", r.TransactionDate)
		}
		p.TransactionDate = &d
	}
	if r.ValidTill != "" {
		d, err := time.Parse(inputDateLayout, r.ValidTill)
		if err != nil {
			return p, apperror.NewValidation("invalid valid_till").
				WithDetail("value", r.ValidTill)
		}
		p.ValidTill = &d
	}

	if r.Items != nil {
		p.Items = make([]quotation.ItemPayload, len(r.Items))
		for i, line := range r.Items {
			p.Items[i] = quotation.ItemPayload{
				ItemCode:           line.ItemCode,
				Qty:                line.Qty,
				Rate:               line.Rate,
				DiscountPercentage: line.DiscountPercentage,
				Warehouse:          line.Warehouse,
			}
		}
	}
	return p, nil
}

// --- Responses ---

// QuotationName is the create/update acknowledgement.
type QuotationName struct {
	Name string `json:"name"`
}

// QuotationListRow is one row of the quotation list screen.
type QuotationListRow struct {
	Name            string `json:"name"`
	CustomerName    string `json:"customer_name"`
	TransactionDate string `json:"transaction_date"`
	GrandTotal      string `json:"grand_total"`
	Status          string `json:"status"`
	TotalQty        string `json:"total_qty"`
}

// FromQuotationList projects quotations into list rows.
func FromQuotationList(quotations []*quotation.Quotation) []QuotationListRow {
	rows := make([]QuotationListRow, len(quotations))
	for i, q := range quotations {
		rows[i] = QuotationListRow{
			Name:            q.Name,
			CustomerName:    q.CustomerName,
			TransactionDate: q.TransactionDate.Format(dateLayout),
			GrandTotal:      moneyfmt.Format(q.GrandTotal, q.Currency),
			Status:          q.DocStatus.String(),
			TotalQty:        q.TotalQty.String(),
		}
	}
	return rows
}

// QuotationItemRow is one line on the detail screen.
type QuotationItemRow struct {
	ItemCode           string `json:"item_code"`
	ItemName           string `json:"item_name"`
	Qty                string `json:"qty"`
	Rate               string `json:"rate"`
	RateCurrency       string `json:"rate_currency"`
	Amount             string `json:"amount"`
	DiscountPercentage string `json:"discount_percentage"`
	UOM                string `json:"uom"`
	Warehouse          string `json:"warehouse"`
	ValidTill          string `json:"valid_till"`
	Image              string `json:"image"`
}

// QuotationDetail is the detail screen projection: formatted totals, plain
// text shipping address and the customer's receivables snapshot.
type QuotationDetail struct {
	Name            string `json:"name"`
	CustomerName    string `json:"customer_name"`
	PartyName       string `json:"party_name"`
	TransactionDate string `json:"transaction_date"`
	ValidTill       string `json:"valid_till"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	AllowEdit       bool   `json:"allow_edit"`
	CreatedBy       string `json:"created_by"`

	TotalQty             string `json:"total_qty"`
	NetTotal             string `json:"net_total"`
	DiscountAmount       string `json:"discount_amount"`
	TotalTaxesAndCharges string `json:"total_taxes_and_charges"`
	GrandTotal           string `json:"grand_total"`

	AnnualBilling string `json:"annual_billing"`
	TotalUnpaid   string `json:"total_unpaid"`

	Terms           string `json:"terms"`
	ShippingAddress string `json:"shipping_address"`
	ContactEmail    string `json:"contact_email"`
	ContactMobile   string `json:"contact_mobile"`

	Items []QuotationItemRow `json:"items"`
}

// FromQuotationDetail projects a quotation with its collaborator lookups.
func FromQuotationDetail(d *quotation.Detail) QuotationDetail {
	q := d.Quotation

	items := make([]QuotationItemRow, len(q.Items))
	for i, line := range q.Items {
		items[i] = QuotationItemRow{
			ItemCode:           line.ItemCode,
			ItemName:           line.ItemName,
			Qty:                line.Qty.String(),
			Rate:               line.Rate.String(),
			RateCurrency:       moneyfmt.Format(line.Rate, q.Currency),
			Amount:             moneyfmt.Format(line.Amount, q.Currency),
			DiscountPercentage: line.DiscountPercentage.String(),
			UOM:                line.UOM,
			Warehouse:          line.Warehouse,
			ValidTill:          line.ValidTill.Format(dateLayout),
			Image:              line.Image,
		}
	}

	return QuotationDetail{
		Name:            q.Name,
		CustomerName:    q.CustomerName,
		PartyName:       q.PartyName,
		TransactionDate: q.TransactionDate.Format(dateLayout),
		ValidTill:       q.ValidTill.Format(dateLayout),
		Currency:        q.Currency,
		Status:          q.DocStatus.String(),
		AllowEdit:       q.IsEditable(),
		CreatedBy:       d.CreatedBy,

		TotalQty:             q.TotalQty.String(),
		NetTotal:             moneyfmt.Format(q.NetTotal, q.Currency),
		DiscountAmount:       moneyfmt.Format(q.DiscountAmount, q.Currency),
		TotalTaxesAndCharges: moneyfmt.Format(q.TotalTaxesAndCharges, q.Currency),
		GrandTotal:           moneyfmt.Format(q.GrandTotal, q.Currency),

		AnnualBilling: moneyfmt.Format(d.Dashboard.BillingThisYear, q.Currency),
		TotalUnpaid:   moneyfmt.Format(d.Dashboard.TotalUnpaid, q.Currency),

		Terms:           q.Terms,
		ShippingAddress: htmltext.Strip(q.ShippingAddress),
		ContactEmail:    q.ContactEmail,
		ContactMobile:   q.ContactMobile,

		Items: items,
	}
}

// FromQuotationTotals projects an assembled-but-unsaved quotation for the
// totals preview. Same shape as the detail screen, minus the lookups that
// only exist after a save.
func FromQuotationTotals(q *quotation.Quotation) QuotationDetail {
	return FromQuotationDetail(&quotation.Detail{Quotation: q})
}

// AttachmentRow is one attachment listing entry.
type AttachmentRow struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
}

// FromAttachments projects attachment rows.
func FromAttachments(attachments []quotation.Attachment) []AttachmentRow {
	rows := make([]AttachmentRow, len(attachments))
	for i, a := range attachments {
		rows[i] = AttachmentRow{FileName: a.FileName, FileURL: a.FileURL}
	}
	return rows
}
