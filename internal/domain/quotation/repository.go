package quotation

import (
	"context"

	"storefront/internal/domain"
)

// Repository defines storage operations for quotations.
//
// Concurrent updates to the same quotation rely on the store's transaction
// boundary; the merge policy is last-writer-wins at field level, no
// optimistic version check on this document type.
type Repository interface {
	// Insert persists a brand-new quotation and assigns its document name
	// from the naming series.
	Insert(ctx context.Context, q *Quotation) error

	// Save persists changes to an existing quotation, lines included.
	Save(ctx context.Context, q *Quotation) error

	// GetByName retrieves a quotation with its lines.
	GetByName(ctx context.Context, name string) (*Quotation, error)

	// List returns a page of quotations, most-recently-modified first.
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Quotation], error)

	// Attachments lists files attached to a quotation.
	Attachments(ctx context.Context, name string) ([]Attachment, error)
}
