// Package customer provides the Customer catalog.
package customer

import (
	"context"

	"storefront/internal/core/apperror"
	"storefront/internal/core/entity"
	"storefront/internal/core/types"
	"storefront/internal/domain"
)

// Customer represents a buying party.
//
// UserID links the customer to exactly one storefront login. The link is the
// single authorization anchor for quotation create/update: the party on a
// quotation is always resolved from the session, never taken from the client.
type Customer struct {
	entity.Catalog

	// CustomerName is the display name
	CustomerName string `db:"customer_name" json:"customerName"`

	// MobileNo is the contact phone shown in list responses
	MobileNo string `db:"mobile_no" json:"mobileNo,omitempty"`

	// UserID is the linked session user (unique; may be empty for
	// customers without storefront access)
	UserID string `db:"user_id" json:"userId,omitempty"`
}

// New creates a Customer catalog entry.
func New(code, customerName string) *Customer {
	c := &Customer{
		Catalog:      entity.NewCatalog(code, customerName),
		CustomerName: customerName,
	}
	return c
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}
	if c.CustomerName == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}
	return nil
}

// Dashboard is the receivables snapshot shown on the quotation detail screen.
// Derived from the sales-invoice ledger, zero when the customer has none.
type Dashboard struct {
	BillingThisYear types.Money `db:"billing_this_year" json:"billingThisYear"`
	TotalUnpaid     types.Money `db:"total_unpaid" json:"totalUnpaid"`
}

// Repository defines storage operations for customers.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// GetByUser resolves the customer linked to a session user.
	GetByUser(ctx context.Context, userID string) (*Customer, error)

	// Dashboard returns year-to-date billing and outstanding balance.
	Dashboard(ctx context.Context, code string) (Dashboard, error)
}
