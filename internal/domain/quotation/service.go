package quotation

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/apperror"
	"storefront/internal/core/tx"
	"storefront/internal/domain"
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/defaults"
	"storefront/pkg/logger"
)

// UserDirectory resolves display names for session users. The read path
// shows the creator's full name, not the login id.
type UserDirectory interface {
	FullName(ctx context.Context, userID string) (string, error)
}

// Service is the quotation assembler. Create, update and the totals preview
// all run through the single Assemble method so the paths cannot drift.
type Service struct {
	repo      Repository
	customers *customer.Service
	defaults  *defaults.Service
	engine    TotalsEngine
	users     UserDirectory
	txManager tx.Manager

	// renderer is optional; the export endpoint stays disabled without it.
	renderer Renderer
}

// Config wires the assembler's collaborators.
type Config struct {
	Repo      Repository
	Customers *customer.Service
	Defaults  *defaults.Service
	Engine    TotalsEngine
	Users     UserDirectory
	TxManager tx.Manager
	Renderer  Renderer
}

// NewService creates a quotation service.
func NewService(cfg Config) *Service {
	return &Service{
		repo:      cfg.Repo,
		customers: cfg.Customers,
		defaults:  cfg.Defaults,
		engine:    cfg.Engine,
		users:     cfg.Users,
		txManager: cfg.TxManager,
		renderer:  cfg.Renderer,
	}
}

// Assemble merges a client payload with resolved defaults onto a new or
// existing quotation and computes its totals. Nothing is persisted here.
//
// Policy, in order: the customer comes from the session user (the only
// authorization anchor); valid-till defaults to today; every line's
// warehouse and valid-till are overwritten from defaults regardless of
// client input; currency and company are defaulted server-side; then the
// totals engine runs its two ordered passes.
func (s *Service) Assemble(ctx context.Context, sessionUser string, payload Payload, existing *Quotation) (*Quotation, error) {
	cust, err := s.customers.ResolveForUser(ctx, sessionUser)
	if err != nil {
		return nil, err
	}

	global, err := s.defaults.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.defaults.ResolveStorefront(ctx)
	if err != nil {
		return nil, err
	}

	q := existing
	if q == nil {
		q = New(global.DefaultCompany)
		q.Owner = sessionUser
	} else if err := q.CanModify(); err != nil {
		return nil, err
	}

	payload.ApplyTo(q)

	q.PartyName = cust.Code
	q.CustomerName = cust.CustomerName
	if q.ContactMobile == "" {
		q.ContactMobile = cust.MobileNo
	}

	validTill := time.Now().UTC().Truncate(24 * time.Hour)
	if payload.ValidTill != nil {
		validTill = *payload.ValidTill
	}
	q.ValidTill = validTill

	// Line warehouse and valid-till always come from the defaults;
	// client-sent values are discarded.
	for i := range q.Items {
		q.Items[i].Warehouse = settings.DefaultWarehouse
		q.Items[i].ValidTill = validTill
	}

	if q.Currency == "" {
		q.Currency = global.DefaultCurrency
	}
	if q.Currency == "" {
		// Only reachable when no default currency is configured.
		return nil, apperror.NewMissingCurrency()
	}

	q.Company = global.DefaultCompany

	if err := s.engine.SetMissingValues(ctx, q); err != nil {
		return nil, err
	}
	if err := s.engine.CalculateTaxesAndTotals(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Prepare runs the assembler without persisting: the totals preview the
// mobile client shows before the user confirms.
func (s *Service) Prepare(ctx context.Context, sessionUser string, payload Payload) (*Quotation, error) {
	q, err := s.Assemble(ctx, sessionUser, payload, nil)
	if err != nil {
		return nil, err
	}
	if err := q.Validate(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

// Create assembles and inserts a new quotation. The document name is
// assigned by the naming series on insert.
func (s *Service) Create(ctx context.Context, sessionUser string, payload Payload) (*Quotation, error) {
	q, err := s.Assemble(ctx, sessionUser, payload, nil)
	if err != nil {
		return nil, err
	}
	if err := q.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Insert(ctx, q)
	})
	if err != nil {
		return nil, persistErr(err)
	}

	logger.Info(ctx, "quotation created", "name", q.Name, "customer", q.PartyName)
	return q, nil
}

// Update re-assembles an existing draft quotation and saves it. The
// lifecycle gate is re-validated inside Assemble.
func (s *Service) Update(ctx context.Context, sessionUser, name string, payload Payload) (*Quotation, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	q, err := s.Assemble(ctx, sessionUser, payload, existing)
	if err != nil {
		return nil, err
	}
	if err := q.Validate(ctx); err != nil {
		return nil, err
	}
	q.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, q)
	})
	if err != nil {
		return nil, persistErr(err)
	}

	logger.Info(ctx, "quotation updated", "name", q.Name)
	return q, nil
}

// Detail is the read-path projection input: the stored quotation plus the
// collaborator lookups the detail screen needs.
type Detail struct {
	Quotation *Quotation
	CreatedBy string
	Dashboard customer.Dashboard
}

// Get retrieves a quotation by name.
func (s *Service) Get(ctx context.Context, name string) (*Quotation, error) {
	return s.repo.GetByName(ctx, name)
}

// GetDetail retrieves a quotation together with creator display name and
// the customer's receivables snapshot.
func (s *Service) GetDetail(ctx context.Context, name string) (*Detail, error) {
	q, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Quotation: q}

	if q.Owner != "" {
		fullName, err := s.users.FullName(ctx, q.Owner)
		if err == nil {
			detail.CreatedBy = fullName
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	dash, err := s.customers.Dashboard(ctx, q.PartyName)
	if err != nil {
		return nil, err
	}
	detail.Dashboard = dash

	return detail, nil
}

// List returns a page of quotations, most-recently-modified first.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Quotation], error) {
	if f.OrderBy == "" {
		f.OrderBy = "modified_at DESC"
	}
	return s.repo.List(ctx, f)
}

// Attachments lists files attached to a quotation.
func (s *Service) Attachments(ctx context.Context, name string) ([]Attachment, error) {
	if _, err := s.repo.GetByName(ctx, name); err != nil {
		return nil, err
	}
	return s.repo.Attachments(ctx, name)
}

// RenderPDF exports a quotation when a renderer is configured.
func (s *Service) RenderPDF(ctx context.Context, name string) ([]byte, error) {
	if s.renderer == nil {
		return nil, apperror.NewConfiguration("PDF export is not enabled")
	}
	q, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderPDF(ctx, q)
}

func persistErr(err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewPersistence(fmt.Errorf("quotation: %w", err))
}
