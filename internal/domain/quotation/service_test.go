package quotation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/apperror"
	"storefront/internal/core/entity"
	"storefront/internal/core/id"
	"storefront/internal/core/types"
	"storefront/internal/domain"
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/defaults"
)

// --- fakes ---

type fakeRepo struct {
	inserted []*Quotation
	saved    []*Quotation
	byName   map[string]*Quotation
	seq      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byName: make(map[string]*Quotation)}
}

func (f *fakeRepo) Insert(ctx context.Context, q *Quotation) error {
	f.seq++
	q.Name = "SAL-QTN-00001"
	f.inserted = append(f.inserted, q)
	f.byName[q.Name] = q
	return nil
}

func (f *fakeRepo) Save(ctx context.Context, q *Quotation) error {
	f.saved = append(f.saved, q)
	f.byName[q.Name] = q
	return nil
}

func (f *fakeRepo) GetByName(ctx context.Context, name string) (*Quotation, error) {
	if q, ok := f.byName[name]; ok {
		return q, nil
	}
	return nil, apperror.NewNotFound("quotations", name)
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Quotation], error) {
	return domain.ListResult[*Quotation]{}, nil
}

func (f *fakeRepo) Attachments(ctx context.Context, name string) ([]Attachment, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	byUser map[string]*customer.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(ctx context.Context, cID id.ID) (*customer.Customer, error) {
	return nil, apperror.NewNotFound("customers", cID)
}
func (f *fakeCustomerRepo) GetByCode(ctx context.Context, code string) (*customer.Customer, error) {
	return nil, apperror.NewNotFound("customers", code)
}
func (f *fakeCustomerRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*customer.Customer], error) {
	return domain.ListResult[*customer.Customer]{}, nil
}
func (f *fakeCustomerRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}
func (f *fakeCustomerRepo) GetByUser(ctx context.Context, userID string) (*customer.Customer, error) {
	if c, ok := f.byUser[userID]; ok {
		return c, nil
	}
	return nil, apperror.NewNotFound("customers", userID)
}
func (f *fakeCustomerRepo) Dashboard(ctx context.Context, code string) (customer.Dashboard, error) {
	return customer.Dashboard{
		BillingThisYear: types.MustMoney("1200"),
		TotalUnpaid:     types.MustMoney("300"),
	}, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) GetGlobalDefaults(ctx context.Context) (defaults.GlobalDefaults, error) {
	return defaults.GlobalDefaults{DefaultCurrency: "INR", DefaultCompany: "DEMO"}, nil
}
func (fakeSettingsRepo) GetStorefrontSettings(ctx context.Context) (defaults.StorefrontSettings, error) {
	return defaults.StorefrontSettings{DefaultPriceList: "Standard Selling", DefaultWarehouse: "Stores"}, nil
}

type fakeEngine struct {
	missingCalls int
	totalsCalls  int
	order        []string
}

func (f *fakeEngine) SetMissingValues(ctx context.Context, q *Quotation) error {
	f.missingCalls++
	f.order = append(f.order, "missing")
	for i := range q.Items {
		if q.Items[i].ItemName == "" {
			q.Items[i].ItemName = q.Items[i].ItemCode
		}
	}
	return nil
}

func (f *fakeEngine) CalculateTaxesAndTotals(ctx context.Context, q *Quotation) error {
	f.totalsCalls++
	f.order = append(f.order, "totals")
	net := types.Zero()
	for i := range q.Items {
		q.Items[i].Amount = q.Items[i].Qty.Mul(q.Items[i].Rate)
		net = net.Add(q.Items[i].Amount)
	}
	q.NetTotal = net
	q.GrandTotal = net
	return nil
}

type fakeUsers struct{}

func (fakeUsers) FullName(ctx context.Context, userID string) (string, error) {
	return "Demo Buyer", nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const testUser = "user-1"

func newTestService() (*Service, *fakeRepo, *fakeEngine) {
	cust := &customer.Customer{
		Catalog:      entity.NewCatalog("CUST-00001", "Demo Buyer Pvt Ltd"),
		CustomerName: "Demo Buyer Pvt Ltd",
		MobileNo:     "+91 98765 43210",
		UserID:       testUser,
	}

	repo := newFakeRepo()
	engine := &fakeEngine{}
	svc := NewService(Config{
		Repo:      repo,
		Customers: customer.NewService(&fakeCustomerRepo{byUser: map[string]*customer.Customer{testUser: cust}}),
		Defaults:  defaults.NewService(fakeSettingsRepo{}),
		Engine:    engine,
		Users:     fakeUsers{},
		TxManager: fakeTxManager{},
	})
	return svc, repo, engine
}

func payloadWithLines() Payload {
	return Payload{
		Items: []ItemPayload{
			{ItemCode: "PAPER", Qty: types.NewQty(2), Rate: moneyPtr("100"), Warehouse: "Client Warehouse"},
		},
	}
}

func moneyPtr(s string) *types.Money {
	m := types.MustMoney(s)
	return &m
}

// --- tests ---

func TestCreate_ResolvesSessionCustomer(t *testing.T) {
	svc, repo, engine := newTestService()
	ctx := context.Background()

	q, err := svc.Create(ctx, testUser, payloadWithLines())
	require.NoError(t, err)

	assert.Equal(t, "SAL-QTN-00001", q.Name)
	assert.Equal(t, "CUST-00001", q.PartyName)
	assert.Equal(t, "Demo Buyer Pvt Ltd", q.CustomerName)
	assert.Equal(t, "INR", q.Currency)
	assert.Equal(t, "DEMO", q.Company)
	assert.Equal(t, testUser, q.Owner)
	assert.Equal(t, "+91 98765 43210", q.ContactMobile, "contact defaults from customer")
	assert.Len(t, repo.inserted, 1)
	assert.Equal(t, []string{"missing", "totals"}, engine.order, "engine passes run in order")
}

func TestCreate_OverwritesLineDefaults(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	validTill := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	p := payloadWithLines()
	p.ValidTill = &validTill

	q, err := svc.Create(ctx, testUser, p)
	require.NoError(t, err)

	line := q.Items[0]
	assert.Equal(t, "Stores", line.Warehouse, "client warehouse discarded")
	assert.Equal(t, validTill, line.ValidTill, "line valid_till mirrors parent")
	assert.Equal(t, validTill, q.ValidTill)
}

func TestCreate_ValidTillDefaultsToToday(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	q, err := svc.Create(ctx, testUser, payloadWithLines())
	require.NoError(t, err)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	assert.Equal(t, today, q.ValidTill)
}

func TestCreate_UnknownUserPersistsNothing(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "stranger", payloadWithLines())
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeCustomerNotFound))
	assert.Empty(t, repo.inserted)
	assert.Empty(t, repo.saved)
}

func TestPrepare_PersistsNothing(t *testing.T) {
	svc, repo, engine := newTestService()
	ctx := context.Background()

	q, err := svc.Prepare(ctx, testUser, payloadWithLines())
	require.NoError(t, err)

	assert.True(t, q.NetTotal.Equal(types.MustMoney("200")))
	assert.Empty(t, repo.inserted)
	assert.Empty(t, repo.saved)
	assert.Equal(t, 1, engine.missingCalls)
	assert.Equal(t, 1, engine.totalsCalls)
}

func TestUpdate_ReassemblesDraft(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testUser, payloadWithLines())
	require.NoError(t, err)

	p := Payload{
		Items: []ItemPayload{
			{ItemCode: "PEN", Qty: types.NewQty(5), Rate: moneyPtr("10")},
		},
	}
	updated, err := svc.Update(ctx, testUser, created.Name, p)
	require.NoError(t, err)

	assert.Len(t, repo.saved, 1)
	assert.Len(t, updated.Items, 1)
	assert.Equal(t, "PEN", updated.Items[0].ItemCode)
	assert.True(t, updated.NetTotal.Equal(types.MustMoney("50")))
}

func TestUpdate_SubmittedIsNotEditable(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testUser, payloadWithLines())
	require.NoError(t, err)
	require.NoError(t, created.Submit())

	_, err = svc.Update(ctx, testUser, created.Name, payloadWithLines())
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotEditable))
	assert.Empty(t, repo.saved)
}

func TestUpdate_PreservesUnlistedFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	terms := "Net 30"
	p := payloadWithLines()
	p.Terms = &terms
	created, err := svc.Create(ctx, testUser, p)
	require.NoError(t, err)

	// Payload without terms: existing value must survive the merge.
	updated, err := svc.Update(ctx, testUser, created.Name, payloadWithLines())
	require.NoError(t, err)
	assert.Equal(t, "Net 30", updated.Terms)
}

func TestUpdate_AdvancesModifiedAt(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testUser, payloadWithLines())
	require.NoError(t, err)

	// List ordering is modified-desc; an update must bubble the document up.
	stale := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	created.ModifiedAt = stale

	updated, err := svc.Update(ctx, testUser, created.Name, payloadWithLines())
	require.NoError(t, err)
	assert.True(t, updated.ModifiedAt.After(stale),
		"modified_at %v not advanced past %v", updated.ModifiedAt, stale)
}

func TestGetDetail_CollaboratorLookups(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testUser, payloadWithLines())
	require.NoError(t, err)

	detail, err := svc.GetDetail(ctx, created.Name)
	require.NoError(t, err)

	assert.Equal(t, "Demo Buyer", detail.CreatedBy)
	assert.True(t, detail.Dashboard.BillingThisYear.Equal(types.MustMoney("1200")))
	assert.True(t, detail.Dashboard.TotalUnpaid.Equal(types.MustMoney("300")))
	assert.True(t, detail.Quotation.IsEditable())
}

func TestRenderPDF_DisabledWithoutRenderer(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RenderPDF(ctx, "SAL-QTN-00001")
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeConfiguration))
}
