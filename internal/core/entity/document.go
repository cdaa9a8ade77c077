package entity

import (
	"context"
	"time"

	"storefront/internal/core/apperror"
)

// DocStatus is the lifecycle stage of a document.
// Non-zero stages freeze the document against ordinary edits.
type DocStatus int

const (
	StatusDraft     DocStatus = 0
	StatusSubmitted DocStatus = 1
	StatusCancelled DocStatus = 2
)

// String returns the display status for the mobile client.
func (s DocStatus) String() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Draft"
	}
}

// Document is the base type for business transactions.
// Examples: Quotation (and, later, SalesOrder).
type Document struct {
	BaseEntity

	// Name is the document number, unique per type (e.g. SAL-QTN-00042).
	// Assigned on insert by the naming series.
	Name string `db:"name" json:"name"`

	// TransactionDate is the business date of the document
	TransactionDate time.Time `db:"transaction_date" json:"transactionDate"`

	// DocStatus gates editability: only draft documents may be modified
	DocStatus DocStatus `db:"docstatus" json:"docstatus"`

	// Company is the issuing company (server-resolved, not client-overridable)
	Company string `db:"company" json:"company"`
}

// NewDocument creates a new draft Document with generated ID.
func NewDocument(company string) Document {
	return Document{
		BaseEntity:      NewBaseEntity(),
		TransactionDate: time.Now().UTC(),
		Company:         company,
	}
}

// Validate implements Validatable.
func (d *Document) Validate(ctx context.Context) error {
	if d.Company == "" {
		return apperror.NewValidation("company is required").
			WithDetail("field", "company")
	}
	if d.TransactionDate.IsZero() {
		return apperror.NewValidation("transaction date is required").
			WithDetail("field", "transactionDate")
	}
	return nil
}

// IsEditable reports whether the document is still in draft.
func (d *Document) IsEditable() bool {
	return d.DocStatus == StatusDraft
}

// CanModify checks the lifecycle gate before a save.
func (d *Document) CanModify() error {
	if !d.IsEditable() {
		return apperror.NewNotEditable(d.Name)
	}
	return nil
}

// Submit moves the document out of draft.
func (d *Document) Submit() error {
	if d.DocStatus != StatusDraft {
		return apperror.NewNotEditable(d.Name)
	}
	d.DocStatus = StatusSubmitted
	d.Touch()
	return nil
}

// Cancel voids a submitted document.
func (d *Document) Cancel() error {
	if d.DocStatus != StatusSubmitted {
		return apperror.NewValidation("only submitted documents can be cancelled").
			WithDetail("name", d.Name)
	}
	d.DocStatus = StatusCancelled
	d.Touch()
	return nil
}
