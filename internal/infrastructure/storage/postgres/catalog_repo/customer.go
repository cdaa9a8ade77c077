package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storefront/internal/core/apperror"
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/infrastructure/storage/postgres"
)

const customersTable = "customers"

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

// NewCustomerRepo creates the customer repository.
func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			customersTable,
			postgres.ExtractDBColumns[customer.Customer](),
			nil,
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

// GetByUser resolves the customer linked to a session user.
func (r *CustomerRepo) GetByUser(ctx context.Context, userID string) (*customer.Customer, error) {
	c := &customer.Customer{}

	q := r.baseSelect().
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(customersTable, userID)
		}
		return nil, fmt.Errorf("get customer by user: %w", err)
	}
	return c, nil
}

// Dashboard aggregates the customer's receivables from the sales-invoice
// ledger: billing since the start of the calendar year and the open balance
// across all submitted invoices. A customer with no invoices gets zeros.
func (r *CustomerRepo) Dashboard(ctx context.Context, code string) (customer.Dashboard, error) {
	var d customer.Dashboard

	q := r.Builder().
		Select(
			"COALESCE(SUM(grand_total) FILTER (WHERE transaction_date >= date_trunc('year', now())), 0) AS billing_this_year",
			"COALESCE(SUM(outstanding_amount), 0) AS total_unpaid",
		).
		From("sales_invoices").
		Where(squirrel.Eq{"customer": code, "docstatus": 1})

	sql, args, err := q.ToSql()
	if err != nil {
		return d, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &d, sql, args...); err != nil {
		return d, fmt.Errorf("customer dashboard: %w", err)
	}
	return d, nil
}
