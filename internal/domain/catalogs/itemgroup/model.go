// Package itemgroup provides the Item Group catalog.
package itemgroup

import (
	"context"

	"storefront/internal/core/entity"
	"storefront/internal/domain"
)

// ItemGroup classifies items. Only groups flagged ShowInMobile appear in
// storefront group listings.
type ItemGroup struct {
	entity.Catalog

	ShowInMobile bool `db:"show_in_mobile" json:"showInMobile"`
}

// New creates an ItemGroup catalog entry.
func New(code, name string) *ItemGroup {
	return &ItemGroup{Catalog: entity.NewCatalog(code, name)}
}

// Validate implements entity.Validatable.
func (g *ItemGroup) Validate(ctx context.Context) error {
	return g.Catalog.Validate(ctx)
}

// Repository defines storage operations for item groups.
type Repository interface {
	domain.CatalogRepository[*ItemGroup]
}
