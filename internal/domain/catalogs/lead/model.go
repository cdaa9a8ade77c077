// Package lead provides the Lead catalog.
package lead

import (
	"context"

	"storefront/internal/core/entity"
	"storefront/internal/domain"
)

// Lead is a prospective customer. The mobile client only lists lead names;
// lead management itself happens elsewhere.
type Lead struct {
	entity.Catalog

	LeadName string `db:"lead_name" json:"leadName"`
}

// New creates a Lead catalog entry.
func New(code, leadName string) *Lead {
	return &Lead{
		Catalog:  entity.NewCatalog(code, leadName),
		LeadName: leadName,
	}
}

// Validate implements entity.Validatable.
func (l *Lead) Validate(ctx context.Context) error {
	return l.Catalog.Validate(ctx)
}

// Repository defines storage operations for leads.
type Repository interface {
	domain.CatalogRepository[*Lead]
}
