// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"storefront/internal/core/entity"
	"storefront/internal/core/id"
	"storefront/internal/domain/filter"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
// Pagination is offset-based and open-ended: no total count is computed, the
// caller discovers the last page by observing a short result.
type ListFilter struct {
	// Search matches name/code fields (ILIKE)
	Search string

	// Filters is a conjunction of client-supplied conditions. Repositories
	// add their own base visibility filters on top.
	Filters []filter.Item

	// IncludeDisabled includes disabled catalog entries
	IncludeDisabled bool

	// OrderBy specifies sorting (e.g. "modified_at DESC")
	OrderBy string

	// Start is the row offset, PageLength the page size
	Start      int
	PageLength int
}

// DefaultListFilter returns the storefront defaults: first page of ten,
// most-recently-modified first.
func DefaultListFilter() ListFilter {
	return ListFilter{
		PageLength: 10,
		OrderBy:    "modified_at DESC",
	}
}

// ListResult contains one page of results.
type ListResult[T any] struct {
	Items      []T `json:"items"`
	Start      int `json:"start"`
	PageLength int `json:"pageLength"`
}

// --- Repository interfaces ---

// CatalogRepository defines read/write operations for catalog entities.
type CatalogRepository[T entity.Validatable] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id id.ID) (T, error)
	GetByCode(ctx context.Context, code string) (T, error)
	Update(ctx context.Context, entity T) error
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
