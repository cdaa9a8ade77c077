// Package defaults resolves process-wide configuration: global company and
// currency defaults plus storefront settings.
//
// Values are read fresh on every request. There is deliberately no in-process
// cache, so the staleness window is zero and an admin change takes effect on
// the next request.
package defaults

import (
	"context"

	"storefront/internal/core/apperror"
)

// GlobalDefaults are the system-wide financial defaults.
type GlobalDefaults struct {
	DefaultCurrency string `db:"default_currency" json:"defaultCurrency"`
	DefaultCompany  string `db:"default_company" json:"defaultCompany"`
}

// StorefrontSettings carry the mobile-storefront specific defaults.
type StorefrontSettings struct {
	DefaultPriceList string `db:"default_price_list" json:"defaultPriceList"`
	DefaultWarehouse string `db:"default_warehouse" json:"defaultWarehouse"`
}

// Repository reads the settings rows.
type Repository interface {
	GetGlobalDefaults(ctx context.Context) (GlobalDefaults, error)
	GetStorefrontSettings(ctx context.Context) (StorefrontSettings, error)
}

// Service is the defaults resolver.
type Service struct {
	repo Repository
}

// NewService creates a defaults resolver.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the global defaults.
func (s *Service) Resolve(ctx context.Context) (GlobalDefaults, error) {
	return s.repo.GetGlobalDefaults(ctx)
}

// ResolveStorefront returns the storefront settings.
func (s *Service) ResolveStorefront(ctx context.Context) (StorefrontSettings, error) {
	return s.repo.GetStorefrontSettings(ctx)
}

// RequirePriceList returns the active price list or a configuration error.
// Pricing cannot silently default: an unset price list is an admin mistake
// that must surface to the caller.
func (s *Service) RequirePriceList(ctx context.Context) (string, error) {
	settings, err := s.repo.GetStorefrontSettings(ctx)
	if err != nil {
		return "", err
	}
	if settings.DefaultPriceList == "" {
		return "", apperror.NewConfiguration("Please set a price list in storefront settings")
	}
	return settings.DefaultPriceList, nil
}
