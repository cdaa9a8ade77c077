package item

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/domain/filter"
)

// Service provides item listings for the storefront.
type Service struct {
	repo Repository
}

// NewService creates an item service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForSale returns the sellable items of a group: enabled, sale-enabled,
// no variant templates. These base filters are always applied regardless of
// what the client asks for.
func (s *Service) ListForSale(ctx context.Context, itemGroup string, f domain.ListFilter) (domain.ListResult[*Item], error) {
	f.Filters = append(f.Filters,
		filter.Eq("is_sales_item", true),
		filter.Eq("has_variants", false),
	)
	if itemGroup != "" {
		f.Filters = append(f.Filters, filter.Eq("item_group", itemGroup))
	}
	return s.repo.List(ctx, f)
}

// GetByCode retrieves an item by its code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Item, error) {
	return s.repo.GetByCode(ctx, code)
}
