package entity

import (
	"context"

	"storefront/internal/core/apperror"
)

// Catalog is the base type for reference data.
// Examples: Customer, Item, ItemGroup, Lead, Company.
//
// Code is the stable human-readable key; it is what the mobile client sees
// as "name" in list responses. Catalog entries are read-only references from
// the quotation's point of view.
type Catalog struct {
	BaseEntity

	// Code is a human-readable identifier (unique per catalog)
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Disabled hides the entry from all storefront listings
	Disabled bool `db:"disabled" json:"disabled"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       code,
		Name:       name,
	}
}

// Validate implements Validatable.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
