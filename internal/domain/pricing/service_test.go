package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/apperror"
	"storefront/internal/core/entity"
	"storefront/internal/core/id"
	"storefront/internal/core/types"
	"storefront/internal/domain"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/domain/defaults"
)

type fakeItemRepo struct {
	prices map[string]types.Money
}

func (f *fakeItemRepo) Create(ctx context.Context, it *item.Item) error { return nil }
func (f *fakeItemRepo) Update(ctx context.Context, it *item.Item) error { return nil }
func (f *fakeItemRepo) GetByID(ctx context.Context, itemID id.ID) (*item.Item, error) {
	return nil, apperror.NewNotFound("items", itemID)
}
func (f *fakeItemRepo) GetByCode(ctx context.Context, code string) (*item.Item, error) {
	return nil, apperror.NewNotFound("items", code)
}
func (f *fakeItemRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	return domain.ListResult[*item.Item]{}, nil
}
func (f *fakeItemRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}
func (f *fakeItemRepo) GetPrice(ctx context.Context, itemCode, priceList string) (item.Price, error) {
	if rate, ok := f.prices[itemCode]; ok {
		return item.Price{ItemCode: itemCode, PriceList: priceList, Rate: rate}, nil
	}
	return item.Price{}, apperror.NewNotFound("item_prices", itemCode)
}
func (f *fakeItemRepo) GetPrices(ctx context.Context, itemCodes []string, priceList string) (map[string]item.Price, error) {
	res := make(map[string]item.Price)
	for _, code := range itemCodes {
		if rate, ok := f.prices[code]; ok {
			res[code] = item.Price{ItemCode: code, PriceList: priceList, Rate: rate}
		}
	}
	return res, nil
}

type fakeSettingsRepo struct {
	priceList string
}

func (f *fakeSettingsRepo) GetGlobalDefaults(ctx context.Context) (defaults.GlobalDefaults, error) {
	return defaults.GlobalDefaults{DefaultCurrency: "INR", DefaultCompany: "DEMO"}, nil
}
func (f *fakeSettingsRepo) GetStorefrontSettings(ctx context.Context) (defaults.StorefrontSettings, error) {
	return defaults.StorefrontSettings{DefaultPriceList: f.priceList, DefaultWarehouse: "Stores"}, nil
}

func testItem(code string, salesUOM string) *item.Item {
	it := &item.Item{
		Catalog:     entity.NewCatalog(code, code),
		ItemName:    code,
		StockUOM:    "Nos",
		SalesUOM:    salesUOM,
		IsSalesItem: true,
	}
	return it
}

func TestResolvePrices(t *testing.T) {
	repo := &fakeItemRepo{prices: map[string]types.Money{"PAPER": types.MustMoney("240")}}
	svc := NewService(repo, defaults.NewService(&fakeSettingsRepo{priceList: "Standard Selling"}))
	ctx := context.Background()

	items := []*item.Item{
		testItem("PAPER", "Box"),
		testItem("PEN", ""),
	}

	priced, err := svc.ResolvePrices(ctx, items)
	require.NoError(t, err)
	require.Len(t, priced, 2)

	// order follows input
	assert.Equal(t, "PAPER", priced[0].Code)
	assert.Equal(t, "PEN", priced[1].Code)

	assert.Equal(t, "Box", priced[0].UOM, "sales UOM preferred")
	assert.True(t, priced[0].Rate.Equal(types.MustMoney("240")))
	assert.Equal(t, "₹ 240.00", priced[0].RateCurrency)

	assert.Equal(t, "Nos", priced[1].UOM, "stock UOM fallback")
	assert.True(t, priced[1].Rate.IsZero(), "missing price row defaults to zero")
	assert.Equal(t, "₹ 0.00", priced[1].RateCurrency, "zero rate still formatted")
}

func TestResolvePrices_NoPriceListConfigured(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewService(repo, defaults.NewService(&fakeSettingsRepo{}))
	ctx := context.Background()

	_, err := svc.ResolvePrices(ctx, []*item.Item{testItem("PAPER", "")})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeConfiguration))
}

func TestResolveRate(t *testing.T) {
	repo := &fakeItemRepo{prices: map[string]types.Money{"PAPER": types.MustMoney("240")}}
	svc := NewService(repo, defaults.NewService(&fakeSettingsRepo{priceList: "Standard Selling"}))
	ctx := context.Background()

	rate, err := svc.ResolveRate(ctx, "PAPER")
	require.NoError(t, err)
	assert.True(t, rate.Equal(types.MustMoney("240")))

	rate, err = svc.ResolveRate(ctx, "UNPRICED")
	require.NoError(t, err)
	assert.True(t, rate.IsZero())
}
