package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storefront/internal/core/apperror"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/infrastructure/storage/postgres"
)

const (
	itemsTable      = "items"
	itemPricesTable = "item_prices"
)

// ItemRepo implements item.Repository.
type ItemRepo struct {
	*BaseCatalogRepo[*item.Item]
}

// NewItemRepo creates the item repository.
func NewItemRepo(txm *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			itemsTable,
			postgres.ExtractDBColumns[item.Item](),
			nil,
			func() *item.Item { return &item.Item{} },
		),
	}
}

// GetPrice returns the rate for (itemCode, priceList).
func (r *ItemRepo) GetPrice(ctx context.Context, itemCode, priceList string) (item.Price, error) {
	var p item.Price

	q := r.Builder().
		Select("item_code", "price_list", "rate").
		From(itemPricesTable).
		Where(squirrel.Eq{"item_code": itemCode, "price_list": priceList}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return p, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return p, apperror.NewNotFound(itemPricesTable, itemCode)
		}
		return p, fmt.Errorf("get price: %w", err)
	}
	return p, nil
}

// GetPrices bulk-loads price rows for a set of item codes. Items without a
// row on the price list are simply absent from the result map.
func (r *ItemRepo) GetPrices(ctx context.Context, itemCodes []string, priceList string) (map[string]item.Price, error) {
	prices := make(map[string]item.Price, len(itemCodes))
	if len(itemCodes) == 0 {
		return prices, nil
	}

	q := r.Builder().
		Select("item_code", "price_list", "rate").
		From(itemPricesTable).
		Where(squirrel.Eq{"item_code": itemCodes, "price_list": priceList})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	var rows []item.Price
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}

	for _, p := range rows {
		prices[p.ItemCode] = p
	}
	return prices, nil
}
