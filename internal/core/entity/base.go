package entity

import (
	"context"
	"time"

	"storefront/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseEntity contains common fields for all entities (catalogs and documents).
// Every entity carries modification timestamps because all list endpoints
// order by most-recently-modified first.
type BaseEntity struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Owner is the session user that created the record
	Owner string `db:"owner" json:"owner,omitempty"`

	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	ModifiedAt time.Time `db:"modified_at" json:"modifiedAt"`
	ModifiedBy string    `db:"modified_by" json:"modifiedBy,omitempty"`
}

// NewBaseEntity creates a new BaseEntity with generated ID and timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:         id.New(),
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Touch updates the modification timestamp.
func (b *BaseEntity) Touch() {
	b.ModifiedAt = time.Now().UTC()
}
