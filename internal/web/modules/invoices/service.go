package invoices

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	invoicedomain "github.com/ph1234-dev/acme-dashboard/internal/invoices"
	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
	apperrors "github.com/ph1234-dev/acme-dashboard/internal/web/platform/errors"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// pageSize is the number of invoice rows per listing page.
const pageSize = 6

// Top-level action messages surfaced to the form on failure.
const (
	msgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	msgCreateDatabase      = "Database Error: Failed to Create Invoice."
	msgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	msgUpdateDatabase      = "Database Error: Failed to Update Invoice."
)

// InvoiceGateway persists and reads invoices for the module.
type InvoiceGateway interface {
	CreateInvoice(ctx context.Context, invoice storage.Invoice) error
	UpdateInvoice(ctx context.Context, invoice storage.Invoice) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
	GetInvoice(ctx context.Context, invoiceID string) (storage.Invoice, bool, error)
	ListInvoices(ctx context.Context, filter storage.InvoiceFilter) ([]storage.InvoiceRow, error)
	CountInvoices(ctx context.Context, query string) (int64, error)
}

// CustomerGateway reads customers for the form select.
type CustomerGateway interface {
	ListCustomers(ctx context.Context) ([]storage.Customer, error)
}

// listing is one page of the filtered invoices table.
type listing struct {
	Query      string
	Page       int
	TotalPages int
	Rows       []storage.InvoiceRow
}

type service struct {
	invoices  InvoiceGateway
	customers CustomerGateway
	tracer    trace.Tracer
	newID     func() string
	now       func() time.Time
	logf      func(format string, args ...any)
}

type unavailableInvoiceGateway struct{}

type unavailableCustomerGateway struct{}

func gatewayUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "invoice storage is not configured")
}

func (unavailableInvoiceGateway) CreateInvoice(context.Context, storage.Invoice) error {
	return gatewayUnavailable()
}

func (unavailableInvoiceGateway) UpdateInvoice(context.Context, storage.Invoice) error {
	return gatewayUnavailable()
}

func (unavailableInvoiceGateway) DeleteInvoice(context.Context, string) error {
	return gatewayUnavailable()
}

func (unavailableInvoiceGateway) GetInvoice(context.Context, string) (storage.Invoice, bool, error) {
	return storage.Invoice{}, false, gatewayUnavailable()
}

func (unavailableInvoiceGateway) ListInvoices(context.Context, storage.InvoiceFilter) ([]storage.InvoiceRow, error) {
	return nil, gatewayUnavailable()
}

func (unavailableInvoiceGateway) CountInvoices(context.Context, string) (int64, error) {
	return 0, gatewayUnavailable()
}

func (unavailableCustomerGateway) ListCustomers(context.Context) ([]storage.Customer, error) {
	return nil, gatewayUnavailable()
}

func newService(invoices InvoiceGateway, customers CustomerGateway) service {
	if invoices == nil {
		invoices = unavailableInvoiceGateway{}
	}
	if customers == nil {
		customers = unavailableCustomerGateway{}
	}
	return service{
		invoices:  invoices,
		customers: customers,
		tracer:    otel.Tracer("web.invoices"),
		newID:     func() string { return uuid.NewString() },
		now:       time.Now,
		logf:      log.Printf,
	}
}

// listInvoices reads one page of the filtered table. Pages are
// 1-indexed; a page past the end yields empty rows, not an error.
func (s service) listInvoices(ctx context.Context, query string, page int) (listing, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.list")
	defer span.End()

	query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}

	total, err := s.invoices.CountInvoices(ctx, query)
	if err != nil {
		span.RecordError(err)
		return listing{}, err
	}
	rows, err := s.invoices.ListInvoices(ctx, storage.InvoiceFilter{
		Query:  query,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		span.RecordError(err)
		return listing{}, err
	}

	return listing{
		Query:      query,
		Page:       page,
		TotalPages: int((total + pageSize - 1) / pageSize),
		Rows:       rows,
	}, nil
}

func (s service) listCustomers(ctx context.Context) ([]storage.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

func (s service) invoice(ctx context.Context, invoiceID string) (storage.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return storage.Invoice{}, apperrors.E(apperrors.KindInvalidInput, "invoice id is required")
	}
	invoice, found, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return storage.Invoice{}, err
	}
	if !found {
		return storage.Invoice{}, apperrors.E(apperrors.KindNotFound, "invoice not found")
	}
	return invoice, nil
}

// createInvoice runs the validate-then-persist pipeline for a new
// invoice. Validation failure and persistence failure both come back as
// a failed result; the invoice is only written when the whole draft is
// valid.
func (s service) createInvoice(ctx context.Context, form url.Values) invoicedomain.ActionResult {
	ctx, span := s.tracer.Start(ctx, "invoices.create")
	defer span.End()

	draft, fieldErrs := invoicedomain.ParseDraft(form)
	if len(fieldErrs) > 0 {
		return invoicedomain.Failed(msgCreateMissingFields, fieldErrs)
	}

	record := storage.Invoice{
		ID:          s.newID(),
		CustomerID:  draft.CustomerID,
		AmountCents: draft.AmountCents,
		Status:      string(draft.Status),
		Date:        s.now().UTC().Format(invoicedomain.DateFormat),
	}
	if err := s.invoices.CreateInvoice(ctx, record); err != nil {
		s.logf("create invoice: %v", err)
		span.RecordError(err)
		return invoicedomain.Failed(msgCreateDatabase, nil)
	}
	return invoicedomain.Redirected(routepath.Invoices)
}

// updateInvoice revalidates the full draft and rewrites the invoice's
// customer, amount, and status. The stored date is left untouched.
func (s service) updateInvoice(ctx context.Context, invoiceID string, form url.Values) invoicedomain.ActionResult {
	ctx, span := s.tracer.Start(ctx, "invoices.update")
	defer span.End()

	draft, fieldErrs := invoicedomain.ParseDraft(form)
	if len(fieldErrs) > 0 {
		return invoicedomain.Failed(msgUpdateMissingFields, fieldErrs)
	}

	record := storage.Invoice{
		ID:          strings.TrimSpace(invoiceID),
		CustomerID:  draft.CustomerID,
		AmountCents: draft.AmountCents,
		Status:      string(draft.Status),
	}
	if err := s.invoices.UpdateInvoice(ctx, record); err != nil {
		s.logf("update invoice: %v", err)
		span.RecordError(err)
		return invoicedomain.Failed(msgUpdateDatabase, nil)
	}
	return invoicedomain.Redirected(routepath.Invoices)
}

// deleteInvoice removes an invoice. Deleting an id that no longer
// exists is not an error.
func (s service) deleteInvoice(ctx context.Context, invoiceID string) error {
	ctx, span := s.tracer.Start(ctx, "invoices.delete")
	defer span.End()

	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "invoice id is required")
	}
	if err := s.invoices.DeleteInvoice(ctx, invoiceID); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
