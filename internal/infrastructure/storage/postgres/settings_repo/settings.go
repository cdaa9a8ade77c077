// Package settings_repo reads the single-row settings tables.
package settings_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"storefront/internal/domain/defaults"
	"storefront/internal/infrastructure/storage/postgres"
)

// SettingsRepo implements defaults.Repository. Both tables hold exactly one
// row; reads go to the database every time, there is no cache layer.
type SettingsRepo struct {
	txm *postgres.TxManager
}

// NewSettingsRepo creates the settings repository.
func NewSettingsRepo(txm *postgres.TxManager) *SettingsRepo {
	return &SettingsRepo{txm: txm}
}

// GetGlobalDefaults reads the system-wide financial defaults.
func (r *SettingsRepo) GetGlobalDefaults(ctx context.Context) (defaults.GlobalDefaults, error) {
	var g defaults.GlobalDefaults

	querier := r.txm.GetQuerier(ctx)
	err := pgxscan.Get(ctx, querier, &g,
		"SELECT default_currency, default_company FROM global_defaults LIMIT 1")
	if err != nil {
		if pgxscan.NotFound(err) {
			return g, nil
		}
		return g, fmt.Errorf("get global defaults: %w", err)
	}
	return g, nil
}

// GetStorefrontSettings reads the mobile storefront settings.
func (r *SettingsRepo) GetStorefrontSettings(ctx context.Context) (defaults.StorefrontSettings, error) {
	var s defaults.StorefrontSettings

	querier := r.txm.GetQuerier(ctx)
	err := pgxscan.Get(ctx, querier, &s,
		"SELECT default_price_list, default_warehouse FROM storefront_settings LIMIT 1")
	if err != nil {
		if pgxscan.NotFound(err) {
			return s, nil
		}
		return s, fmt.Errorf("get storefront settings: %w", err)
	}
	return s, nil
}
