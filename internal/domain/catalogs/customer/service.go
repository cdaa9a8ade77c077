package customer

import (
	"context"

	"storefront/internal/core/apperror"
	"storefront/internal/domain"
)

// Service provides customer lookups for the storefront.
type Service struct {
	repo Repository
}

// NewService creates a customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResolveForUser maps the authenticated session user to their customer
// record. A missing link is a domain error, not a generic not-found: it
// blocks quotation assembly before anything is persisted.
func (s *Service) ResolveForUser(ctx context.Context, userID string) (*Customer, error) {
	if userID == "" {
		return nil, apperror.NewCustomerNotFound(userID)
	}

	cust, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewCustomerNotFound(userID)
		}
		return nil, err
	}
	return cust, nil
}

// GetByCode retrieves a customer by its code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Customer, error) {
	return s.repo.GetByCode(ctx, code)
}

// List returns a customer page for the mobile client.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Customer], error) {
	return s.repo.List(ctx, f)
}

// Dashboard returns the receivables snapshot for a customer.
func (s *Service) Dashboard(ctx context.Context, code string) (Dashboard, error) {
	return s.repo.Dashboard(ctx, code)
}
