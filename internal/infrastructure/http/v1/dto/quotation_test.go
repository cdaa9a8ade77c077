package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/types"
	"storefront/internal/domain/quotation"
)

func testQuotation() *quotation.Quotation {
	q := quotation.New("DEMO")
	q.Name = "SAL-QTN-00042"
	q.PartyName = "CUST-00001"
	q.CustomerName = "Demo Buyer Pvt Ltd"
	q.Currency = "INR"
	q.TransactionDate = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	q.ValidTill = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	q.ShippingAddress = "<div>42 MG Road</div><div>Bengaluru</div>"
	q.TotalQty = types.NewQty(2)
	q.NetTotal = types.MustMoney("200")
	q.GrandTotal = types.MustMoney("236")
	q.Items = []quotation.Item{
		{
			ItemCode:  "PAPER",
			ItemName:  "Copier Paper",
			Qty:       types.NewQty(2),
			Rate:      types.MustMoney("100"),
			Amount:    types.MustMoney("200"),
			UOM:       "Box",
			Warehouse: "Stores",
			ValidTill: q.ValidTill,
		},
	}
	return q
}

func TestFromQuotationList(t *testing.T) {
	rows := FromQuotationList([]*quotation.Quotation{testQuotation()})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "SAL-QTN-00042", row.Name)
	assert.Equal(t, "29-08-2026", row.TransactionDate, "dates render dd-mm-yyyy")
	assert.Equal(t, "₹ 236.00", row.GrandTotal)
	assert.Equal(t, "Draft", row.Status)
	assert.Equal(t, "2", row.TotalQty)
}

func TestFromQuotationDetail(t *testing.T) {
	q := testQuotation()
	detail := FromQuotationDetail(&quotation.Detail{Quotation: q, CreatedBy: "Demo Buyer"})

	assert.True(t, detail.AllowEdit, "draft quotations stay editable")
	assert.Equal(t, "Demo Buyer", detail.CreatedBy)
	assert.Equal(t, "42 MG Road\nBengaluru", detail.ShippingAddress, "markup stripped")
	assert.Equal(t, "₹ 200.00", detail.NetTotal)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "₹ 100.00", detail.Items[0].RateCurrency)
	assert.Equal(t, "₹ 200.00", detail.Items[0].Amount)
	assert.Equal(t, "15-09-2026", detail.Items[0].ValidTill)
}

func TestFromQuotationDetail_SubmittedNotEditable(t *testing.T) {
	q := testQuotation()
	require.NoError(t, q.Submit())

	detail := FromQuotationDetail(&quotation.Detail{Quotation: q})
	assert.False(t, detail.AllowEdit)
	assert.Equal(t, "Submitted", detail.Status)
}

func TestQuotationRequest_ToPayload(t *testing.T) {
	rate := types.MustMoney("100")
	req := QuotationRequest{
		ValidTill: "2026-09-15",
		Items: []QuotationItemRequest{
			{ItemCode: "PAPER", Qty: types.NewQty(2), Rate: &rate, Warehouse: "Client Warehouse"},
		},
	}

	p, err := req.ToPayload()
	require.NoError(t, err)

	require.NotNil(t, p.ValidTill)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *p.ValidTill)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "PAPER", p.Items[0].ItemCode)
}

func TestQuotationRequest_ToPayload_BadDate(t *testing.T) {
	req := QuotationRequest{ValidTill: "15/09/2026"}
	_, err := req.ToPayload()
	require.Error(t, err)
}
