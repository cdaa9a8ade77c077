package totals

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
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/quotation"
)

type fakeItemRepo struct {
	items  map[string]*item.Item
	prices map[string]types.Money
}

func (f *fakeItemRepo) Create(ctx context.Context, it *item.Item) error { return nil }
func (f *fakeItemRepo) Update(ctx context.Context, it *item.Item) error { return nil }
func (f *fakeItemRepo) GetByID(ctx context.Context, itemID id.ID) (*item.Item, error) {
	return nil, apperror.NewNotFound("items", itemID)
}
func (f *fakeItemRepo) GetByCode(ctx context.Context, code string) (*item.Item, error) {
	if it, ok := f.items[code]; ok {
		return it, nil
	}
	return nil, apperror.NewNotFound("items", code)
}
func (f *fakeItemRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	return domain.ListResult[*item.Item]{}, nil
}
func (f *fakeItemRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := f.items[code]
	return ok, nil
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

func testItem(code, name string) *item.Item {
	it := &item.Item{
		Catalog:     entity.NewCatalog(code, name),
		ItemName:    name,
		StockUOM:    "Nos",
		IsSalesItem: true,
	}
	return it
}

func newTestEngine(charges []Charge) *Engine {
	paper := testItem("PAPER", "Copier Paper")
	paper.SalesUOM = "Box"
	paper.Image = "/img/paper.png"

	repo := &fakeItemRepo{
		items: map[string]*item.Item{
			"PAPER": paper,
			"PEN":   testItem("PEN", "Ballpoint Pen"),
		},
		prices: map[string]types.Money{
			"PAPER": types.MustMoney("100"),
		},
	}
	def := defaults.NewService(&fakeSettingsRepo{priceList: "Standard Selling"})
	return NewEngine(repo, pricing.NewService(repo, def), charges)
}

func TestSetMissingValues_FillsCatalogFields(t *testing.T) {
	engine := newTestEngine(nil)
	ctx := context.Background()

	q := quotation.New("DEMO")
	q.Items = []quotation.Item{
		{ItemCode: "PAPER", Qty: types.NewQty(2)},
	}

	require.NoError(t, engine.SetMissingValues(ctx, q))

	line := q.Items[0]
	assert.Equal(t, "Copier Paper", line.ItemName)
	assert.Equal(t, "Box", line.UOM, "sales UOM preferred")
	assert.Equal(t, "/img/paper.png", line.Image)
	assert.True(t, line.Rate.Equal(types.MustMoney("100")), "price list rate filled: %s", line.Rate)
}

func TestSetMissingValues_StockUOMFallbackAndZeroRate(t *testing.T) {
	engine := newTestEngine(nil)
	ctx := context.Background()

	q := quotation.New("DEMO")
	q.Items = []quotation.Item{
		{ItemCode: "PEN", Qty: types.NewQty(1)},
	}

	require.NoError(t, engine.SetMissingValues(ctx, q))

	line := q.Items[0]
	assert.Equal(t, "Nos", line.UOM, "stock UOM fallback")
	assert.True(t, line.Rate.IsZero(), "missing price row resolves to zero")
}

func TestSetMissingValues_KeepsClientRate(t *testing.T) {
	engine := newTestEngine(nil)
	ctx := context.Background()

	q := quotation.New("DEMO")
	q.Items = []quotation.Item{
		{ItemCode: "PAPER", Qty: types.NewQty(1), Rate: types.MustMoney("95")},
	}

	require.NoError(t, engine.SetMissingValues(ctx, q))
	assert.True(t, q.Items[0].Rate.Equal(types.MustMoney("95")))
}

func TestSetMissingValues_UnknownItem(t *testing.T) {
	engine := newTestEngine(nil)
	ctx := context.Background()

	q := quotation.New("DEMO")
	q.Items = []quotation.Item{
		{ItemCode: "NOPE", Qty: types.NewQty(1)},
	}

	err := engine.SetMissingValues(ctx, q)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCalculateTaxesAndTotals_TwoTimesHundred(t *testing.T) {
	engine := newTestEngine(nil)
	ctx := context.Background()

	q := quotation.New("DEMO")
	q.Items = []quotation.Item{
		{ItemCode: "PAPER", Qty: types.NewQty(2), Rate: types.MustMoney("100")},
	}

	require.NoError(t, engine.CalculateTaxesAndTotals(ctx, q))

	assert.True(t, q.NetTotal.Equal(types.MustMoney("200")), "net total: %s", q.NetTotal)
	assert.True(t, q.GrandTotal.GreaterThanOrEqual(q.NetTotal), "grand >= net")
	assert.True(t, q.TotalQty.Equal(types.NewQty(2)))
	assert.True(t, q.DiscountAmount.IsZero())
}

func TestCalculateTaxesAndTotals_DiscountAndCharges(t *testing.T) {
	engine := newTestEngine([]Charge{{Description: "GST", Rate: types.MustMoney("18")}})
	ctx := context.Background()

	q := quotation.New("DEMO")
	q.Items = []quotation.Item{
		{ItemCode: "PAPER", Qty: types.NewQty(2), Rate: types.MustMoney("100"), DiscountPercentage: types.MustMoney("10")},
		{ItemCode: "PEN", Qty: types.NewQty(5), Rate: types.MustMoney("10")},
	}

	require.NoError(t, engine.CalculateTaxesAndTotals(ctx, q))

	// line 1: 2*100*0.9 = 180, line 2: 5*10 = 50
	assert.True(t, q.NetTotal.Equal(types.MustMoney("230")), "net: %s", q.NetTotal)
	assert.True(t, q.DiscountAmount.Equal(types.MustMoney("20")), "discount: %s", q.DiscountAmount)
	assert.True(t, q.TotalTaxesAndCharges.Equal(types.MustMoney("41.4")), "taxes: %s", q.TotalTaxesAndCharges)
	assert.True(t, q.GrandTotal.Equal(types.MustMoney("271.4")), "grand: %s", q.GrandTotal)
	assert.True(t, q.TotalQty.Equal(types.NewQty(7)))
	assert.True(t, q.Items[0].Amount.Equal(types.MustMoney("180")))
}

func TestCalculateTaxesAndTotals_EmptyLines(t *testing.T) {
	engine := newTestEngine(DefaultCharges())
	ctx := context.Background()

	q := quotation.New("DEMO")
	require.NoError(t, engine.CalculateTaxesAndTotals(ctx, q))

	assert.True(t, q.NetTotal.IsZero())
	assert.True(t, q.GrandTotal.IsZero())
}
