// Package document_repo provides PostgreSQL implementations for document
// repositories.
package document_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storefront/internal/core/apperror"
	"storefront/internal/domain"
	"storefront/internal/domain/filter"
	"storefront/internal/domain/quotation"
	"storefront/internal/infrastructure/storage/postgres"
)

const (
	quotationsTable     = "quotations"
	quotationItemsTable = "quotation_items"
	filesTable          = "files"

	// namingSeries is the document number pattern; the counter comes from
	// a PostgreSQL sequence so concurrent inserts never collide.
	namingSeries    = "SAL-QTN-%05d"
	namingSequence  = "quotation_name_seq"
	attachedDocType = "Quotation"
)

// QuotationRepo implements quotation.Repository.
type QuotationRepo struct {
	txm *postgres.TxManager

	headerCols []string
	lineCols   []string
}

// NewQuotationRepo creates the quotation repository.
func NewQuotationRepo(txm *postgres.TxManager) *QuotationRepo {
	return &QuotationRepo{
		txm:        txm,
		headerCols: postgres.ExtractDBColumns[quotation.Quotation](),
		lineCols:   postgres.ExtractDBColumns[quotation.Item](),
	}
}

func (r *QuotationRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Insert persists a new quotation and assigns its document name.
func (r *QuotationRepo) Insert(ctx context.Context, q *quotation.Quotation) error {
	querier := r.txm.GetQuerier(ctx)

	var seq int64
	err := querier.QueryRow(ctx, fmt.Sprintf("SELECT nextval('%s')", namingSequence)).Scan(&seq)
	if err != nil {
		return fmt.Errorf("next quotation number: %w", err)
	}
	q.Name = fmt.Sprintf(namingSeries, seq)

	data := r.headerValues(q)
	insertSQL, args, err := r.builder().
		Insert(quotationsTable).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := querier.Exec(ctx, insertSQL, args...); err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}

	return r.insertLines(ctx, q)
}

// Save writes the header and replaces the whole table part. Lines are
// exclusively owned by their quotation, so delete-and-reinsert keeps the
// stored set exactly equal to the assembled one.
func (r *QuotationRepo) Save(ctx context.Context, q *quotation.Quotation) error {
	querier := r.txm.GetQuerier(ctx)

	data := r.headerValues(q)
	delete(data, "name")

	updateSQL, args, err := r.builder().
		Update(quotationsTable).
		SetMap(data).
		Where(squirrel.Eq{"name": q.Name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	result, err := querier.Exec(ctx, updateSQL, args...)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(quotationsTable, q.Name)
	}

	deleteSQL, args, err := r.builder().
		Delete(quotationItemsTable).
		Where(squirrel.Eq{"quotation_name": q.Name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := querier.Exec(ctx, deleteSQL, args...); err != nil {
		return fmt.Errorf("delete quotation lines: %w", err)
	}

	return r.insertLines(ctx, q)
}

func (r *QuotationRepo) headerValues(q *quotation.Quotation) map[string]any {
	data := postgres.StructToMap(q)
	filtered := make(map[string]any, len(r.headerCols))
	for _, col := range r.headerCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}
	return filtered
}

func (r *QuotationRepo) insertLines(ctx context.Context, q *quotation.Quotation) error {
	if len(q.Items) == 0 {
		return nil
	}

	cols := append([]string{"quotation_name"}, r.lineCols...)
	ib := r.builder().Insert(quotationItemsTable).Columns(cols...)

	for _, line := range q.Items {
		data := postgres.StructToMap(line)
		vals := make([]any, 0, len(cols))
		vals = append(vals, q.Name)
		for _, col := range r.lineCols {
			vals = append(vals, data[col])
		}
		ib = ib.Values(vals...)
	}

	sql, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert quotation lines: %w", err)
	}
	return nil
}

// GetByName retrieves a quotation with its lines ordered by idx.
func (r *QuotationRepo) GetByName(ctx context.Context, name string) (*quotation.Quotation, error) {
	q := &quotation.Quotation{}

	headerSQL, args, err := r.builder().
		Select(r.headerCols...).
		From(quotationsTable).
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, q, headerSQL, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(quotationsTable, name)
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}

	linesSQL, args, err := r.builder().
		Select(r.lineCols...).
		From(quotationItemsTable).
		Where(squirrel.Eq{"quotation_name": name}).
		OrderBy("idx ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, querier, &q.Items, linesSQL, args...); err != nil {
		return nil, fmt.Errorf("get quotation lines: %w", err)
	}
	return q, nil
}

// List returns one page of quotations without lines. The default order is
// most-recently-modified first; pagination is open-ended (no total count).
func (r *QuotationRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*quotation.Quotation], error) {
	result := domain.ListResult[*quotation.Quotation]{
		Start:      f.Start,
		PageLength: f.PageLength,
	}

	q := r.builder().
		Select(r.headerCols...).
		From(quotationsTable)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"customer_name": pattern},
		})
	}

	validCols := make(map[string]bool, len(r.headerCols))
	for _, col := range r.headerCols {
		validCols[col] = true
	}
	for _, item := range f.Filters {
		if !validCols[item.Field] {
			return result, apperror.NewValidation("invalid filter column").
				WithDetail("field", item.Field)
		}
		switch item.Operator {
		case filter.Equal:
			q = q.Where(squirrel.Eq{item.Field: item.Value})
		case filter.NotEqual:
			q = q.Where(squirrel.NotEq{item.Field: item.Value})
		case filter.InList:
			q = q.Where(squirrel.Eq{item.Field: item.Value})
		case filter.Less:
			q = q.Where(squirrel.Lt{item.Field: item.Value})
		case filter.LessOrEqual:
			q = q.Where(squirrel.LtOrEq{item.Field: item.Value})
		case filter.Greater:
			q = q.Where(squirrel.Gt{item.Field: item.Value})
		case filter.GreaterOrEqual:
			q = q.Where(squirrel.GtOrEq{item.Field: item.Value})
		default:
			return result, apperror.NewValidation("invalid filter operator").
				WithDetail("operator", string(item.Operator))
		}
	}

	orderBy, err := parseOrderBy(f.OrderBy, validCols)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if f.PageLength > 0 {
		q = q.Limit(uint64(f.PageLength))
	}
	if f.Start > 0 {
		q = q.Offset(uint64(f.Start))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list quotations: %w", err)
	}
	return result, nil
}

func parseOrderBy(orderBy string, validCols map[string]bool) (string, error) {
	if orderBy == "" {
		return "modified_at DESC", nil
	}

	parts := strings.Fields(orderBy)
	if len(parts) == 0 || len(parts) > 2 || !validCols[parts[0]] {
		return "", apperror.NewValidation("invalid order by clause").
			WithDetail("orderBy", orderBy)
	}

	dir := "ASC"
	if len(parts) == 2 {
		switch strings.ToUpper(parts[1]) {
		case "ASC", "DESC":
			dir = strings.ToUpper(parts[1])
		default:
			return "", apperror.NewValidation("invalid order by direction")
		}
	}
	return parts[0] + " " + dir, nil
}

// Attachments lists files attached to a quotation.
func (r *QuotationRepo) Attachments(ctx context.Context, name string) ([]quotation.Attachment, error) {
	sql, args, err := r.builder().
		Select("file_name", "file_url").
		From(filesTable).
		Where(squirrel.Eq{"attached_to_type": attachedDocType, "attached_to_name": name}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	attachments := make([]quotation.Attachment, 0)
	if err := pgxscan.Select(ctx, querier, &attachments, sql, args...); err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return attachments, nil
}
