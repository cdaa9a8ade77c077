// Package company provides the Company catalog.
package company

import (
	"context"

	"storefront/internal/core/apperror"
	"storefront/internal/core/entity"
	"storefront/internal/core/types"
	"storefront/internal/domain"
)

// Company is the issuing legal entity. The storefront exposes a fixed
// profile projection of it; quotations always carry the default company.
type Company struct {
	entity.Catalog

	CompanyName     string `db:"company_name" json:"companyName"`
	Abbreviation    string `db:"abbr" json:"abbr"`
	DefaultCurrency string `db:"default_currency" json:"defaultCurrency"`
	Country         string `db:"country" json:"country,omitempty"`

	// Tax identifiers
	GSTIN string `db:"gstin" json:"gstin,omitempty"`
	PAN   string `db:"pan" json:"pan,omitempty"`

	// Contact
	PhoneNo string `db:"phone_no" json:"phoneNo,omitempty"`
	Email   string `db:"email" json:"email,omitempty"`
	Website string `db:"website" json:"website,omitempty"`

	TotalMonthlySales types.Money `db:"total_monthly_sales" json:"totalMonthlySales"`
	CreditLimit       types.Money `db:"credit_limit" json:"creditLimit"`
}

// New creates a Company catalog entry.
func New(code, companyName, currency string) *Company {
	return &Company{
		Catalog:         entity.NewCatalog(code, companyName),
		CompanyName:     companyName,
		DefaultCurrency: currency,
	}
}

// Validate implements entity.Validatable.
func (c *Company) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}
	if c.DefaultCurrency == "" {
		return apperror.NewValidation("default currency is required").
			WithDetail("field", "defaultCurrency")
	}
	return nil
}

// Repository defines storage operations for companies.
type Repository interface {
	domain.CatalogRepository[*Company]
}
