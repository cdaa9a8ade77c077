// Package item provides the Item catalog and its price list rows.
package item

import (
	"context"

	"storefront/internal/core/apperror"
	"storefront/internal/core/entity"
	"storefront/internal/core/types"
	"storefront/internal/domain"
)

// Item represents a sellable catalog entry. Code doubles as the item code
// the mobile client sends on quotation lines.
type Item struct {
	entity.Catalog

	// ItemName is the display name
	ItemName string `db:"item_name" json:"itemName"`

	// ItemGroup is the owning group code
	ItemGroup string `db:"item_group" json:"itemGroup"`

	// Image is the display image URL
	Image string `db:"image" json:"image,omitempty"`

	// SalesUOM is preferred for storefront display; StockUOM is the fallback
	SalesUOM string `db:"sales_uom" json:"salesUom,omitempty"`
	StockUOM string `db:"stock_uom" json:"stockUom"`

	Description string `db:"description" json:"description,omitempty"`

	// IsSalesItem and HasVariants gate storefront visibility together with
	// the catalog-level Disabled flag
	IsSalesItem bool `db:"is_sales_item" json:"isSalesItem"`
	HasVariants bool `db:"has_variants" json:"hasVariants"`
}

// New creates an Item catalog entry.
func New(code, itemName, itemGroup string) *Item {
	return &Item{
		Catalog:     entity.NewCatalog(code, itemName),
		ItemName:    itemName,
		ItemGroup:   itemGroup,
		IsSalesItem: true,
	}
}

// UOM resolves the display unit: sales UOM if present, else stock UOM.
func (i *Item) UOM() string {
	if i.SalesUOM != "" {
		return i.SalesUOM
	}
	return i.StockUOM
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}
	if i.ItemName == "" {
		return apperror.NewValidation("item name is required").
			WithDetail("field", "itemName")
	}
	if i.StockUOM == "" {
		return apperror.NewValidation("stock UOM is required").
			WithDetail("field", "stockUom")
	}
	return nil
}

// Price is one row of a price list: (item, price list) -> rate.
type Price struct {
	ItemCode  string      `db:"item_code" json:"itemCode"`
	PriceList string      `db:"price_list" json:"priceList"`
	Rate      types.Money `db:"rate" json:"rate"`
}

// Repository defines storage operations for items and price rows.
type Repository interface {
	domain.CatalogRepository[*Item]

	// GetPrice returns the price row for (itemCode, priceList).
	// Missing rows surface as a NotFound error; callers default to zero.
	GetPrice(ctx context.Context, itemCode, priceList string) (Price, error)

	// GetPrices bulk-loads price rows for the given item codes.
	GetPrices(ctx context.Context, itemCodes []string, priceList string) (map[string]Price, error)
}
