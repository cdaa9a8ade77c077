// Package pricing attaches price-list rates to catalog items.
package pricing

import (
	"context"

	"storefront/internal/core/types"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/domain/defaults"
	"storefront/pkg/moneyfmt"
)

// PricedItem is an item with its resolved unit, rate and display rate.
type PricedItem struct {
	*item.Item

	// UOM is the resolved display unit (sales UOM, stock UOM fallback)
	UOM string `json:"uom"`

	// Rate is the price-list rate; zero when no price row exists
	Rate types.Money `json:"rate"`

	// RateCurrency is the currency-formatted rate string, never empty
	RateCurrency string `json:"rateCurrency"`
}

// Service resolves prices against the active storefront price list.
// Pure read: no side effects, result order matches input order.
type Service struct {
	items    item.Repository
	defaults *defaults.Service
}

// NewService creates a pricing resolver.
func NewService(items item.Repository, def *defaults.Service) *Service {
	return &Service{items: items, defaults: def}
}

// ResolvePrices prices the given items. Fails with a configuration error
// when no price list is set; a missing price row is not an error and
// resolves to a zero rate.
func (s *Service) ResolvePrices(ctx context.Context, items []*item.Item) ([]PricedItem, error) {
	global, err := s.defaults.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	priceList, err := s.defaults.RequirePriceList(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(items))
	for i, it := range items {
		codes[i] = it.Code
	}

	prices, err := s.items.GetPrices(ctx, codes, priceList)
	if err != nil {
		return nil, err
	}

	priced := make([]PricedItem, len(items))
	for i, it := range items {
		rate := types.Zero()
		if row, ok := prices[it.Code]; ok {
			rate = row.Rate
		}
		priced[i] = PricedItem{
			Item:         it,
			UOM:          it.UOM(),
			Rate:         rate,
			RateCurrency: moneyfmt.Format(rate, global.DefaultCurrency),
		}
	}
	return priced, nil
}

// ResolveRate prices a single item code, defaulting to zero.
func (s *Service) ResolveRate(ctx context.Context, itemCode string) (types.Money, error) {
	priceList, err := s.defaults.RequirePriceList(ctx)
	if err != nil {
		return types.Zero(), err
	}

	prices, err := s.items.GetPrices(ctx, []string{itemCode}, priceList)
	if err != nil {
		return types.Zero(), err
	}
	if row, ok := prices[itemCode]; ok {
		return row.Rate, nil
	}
	return types.Zero(), nil
}
