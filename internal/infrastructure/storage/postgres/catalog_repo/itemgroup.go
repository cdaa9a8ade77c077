package catalog_repo

import (
	"storefront/internal/domain/catalogs/itemgroup"
	"storefront/internal/domain/filter"
	"storefront/internal/infrastructure/storage/postgres"
)

const itemGroupsTable = "item_groups"

// ItemGroupRepo implements itemgroup.Repository. Listings only ever show
// groups flagged for the mobile storefront, so that filter is baked in.
type ItemGroupRepo struct {
	*BaseCatalogRepo[*itemgroup.ItemGroup]
}

// NewItemGroupRepo creates the item group repository.
func NewItemGroupRepo(txm *postgres.TxManager) *ItemGroupRepo {
	return &ItemGroupRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			itemGroupsTable,
			postgres.ExtractDBColumns[itemgroup.ItemGroup](),
			[]filter.Item{filter.Eq("show_in_mobile", true)},
			func() *itemgroup.ItemGroup { return &itemgroup.ItemGroup{} },
		),
	}
}
