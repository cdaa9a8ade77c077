// Package auth provides authentication for storefront sessions.
package auth

import (
	"context"
	"time"

	"storefront/internal/core/id"
)

// User is a storefront login. Customers reference users one-to-one via
// their user link; employees carry sales roles instead.
type User struct {
	ID           id.ID     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"fullName"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Roles        []string  `db:"roles" json:"roles"`
	Disabled     bool      `db:"disabled" json:"disabled"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	ModifiedAt   time.Time `db:"modified_at" json:"modifiedAt"`
}

// Repository defines storage operations for users.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	Create(ctx context.Context, user *User) error
}

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	FullName    string    `json:"fullName"`
}
