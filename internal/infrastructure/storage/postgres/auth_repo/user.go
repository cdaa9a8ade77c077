// Package auth_repo provides PostgreSQL storage for storefront users.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storefront/internal/core/apperror"
	"storefront/internal/core/id"
	"storefront/internal/domain/auth"
	"storefront/internal/infrastructure/storage/postgres"
)

const usersTable = "users"

var userCols = []string{
	"id", "email", "full_name", "password_hash",
	"roles", "disabled", "created_at", "modified_at",
}

// UserRepo implements auth.Repository.
type UserRepo struct {
	txm *postgres.TxManager
}

// NewUserRepo creates the user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// GetByEmail retrieves a user by login email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	u := &auth.User{}

	sql, args, err := r.builder().
		Select(userCols...).
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(usersTable, email)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	u := &auth.User{}

	sql, args, err := r.builder().
		Select(userCols...).
		From(usersTable).
		Where(squirrel.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(usersTable, userID.String())
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	sql, args, err := r.builder().
		Insert(usersTable).
		Columns(userCols...).
		Values(
			user.ID, user.Email, user.FullName, user.PasswordHash,
			user.Roles, user.Disabled, user.CreatedAt, user.ModifiedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
