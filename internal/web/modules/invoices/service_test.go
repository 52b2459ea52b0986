package invoices

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	invoicedomain "github.com/ph1234-dev/acme-dashboard/internal/invoices"
	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
)

func newTestService(invoices *fakeInvoiceGateway, customers *fakeCustomerGateway) service {
	svc := newService(invoices, customers)
	svc.newID = func() string { return "inv-test" }
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}
	svc.logf = func(string, ...any) {}
	return svc
}

// captureLog redirects a service's log output into the returned slice.
func captureLog(svc *service) *[]string {
	var lines []string
	svc.logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	return &lines
}

func validForm() url.Values {
	return url.Values{
		invoicedomain.FieldCustomerID: {"c1"},
		invoicedomain.FieldAmount:     {"50.00"},
		invoicedomain.FieldStatus:     {"pending"},
	}
}

func TestCreateInvoicePersistsAndRedirects(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{}
	svc := newTestService(gateway, &fakeCustomerGateway{})

	result := svc.createInvoice(context.Background(), validForm())
	if !result.Redirects() {
		t.Fatalf("result = %+v, want redirect", result)
	}
	if result.RedirectTo != "/dashboard/invoices" {
		t.Fatalf("redirect = %q", result.RedirectTo)
	}
	if len(gateway.created) != 1 {
		t.Fatalf("created = %d, want 1", len(gateway.created))
	}

	want := storage.Invoice{ID: "inv-test", CustomerID: "c1", AmountCents: 5000, Status: "pending", Date: "2026-08-29"}
	if gateway.created[0] != want {
		t.Fatalf("created = %+v, want %+v", gateway.created[0], want)
	}
}

func TestCreateInvoiceInvalidDraftDoesNotTouchStore(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{}
	svc := newTestService(gateway, &fakeCustomerGateway{})

	result := svc.createInvoice(context.Background(), url.Values{})
	if result.Redirects() {
		t.Fatal("invalid draft redirected")
	}
	if result.Message != "Missing Fields. Failed to Create Invoice." {
		t.Fatalf("message = %q", result.Message)
	}
	for _, field := range []string{invoicedomain.FieldCustomerID, invoicedomain.FieldAmount, invoicedomain.FieldStatus} {
		if !result.Errors.Has(field) {
			t.Errorf("missing field error for %q", field)
		}
	}
	if len(gateway.created) != 0 {
		t.Fatal("store was written for invalid draft")
	}
}

func TestCreateInvoicePersistenceFailure(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{createErr: errors.New("disk full")}
	svc := newTestService(gateway, &fakeCustomerGateway{})
	logged := captureLog(&svc)

	result := svc.createInvoice(context.Background(), validForm())
	if result.Redirects() {
		t.Fatal("persistence failure redirected")
	}
	if result.Message != "Database Error: Failed to Create Invoice." {
		t.Fatalf("message = %q", result.Message)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected field errors: %v", result.Errors)
	}
	if len(*logged) != 1 || !strings.Contains((*logged)[0], "disk full") {
		t.Fatalf("logged = %v, want one line carrying the store error", *logged)
	}
}

func TestUpdateInvoiceRewritesWithoutDate(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{}
	svc := newTestService(gateway, &fakeCustomerGateway{})

	result := svc.updateInvoice(context.Background(), "inv-1", validForm())
	if !result.Redirects() {
		t.Fatalf("result = %+v, want redirect", result)
	}
	if len(gateway.updated) != 1 {
		t.Fatalf("updated = %d, want 1", len(gateway.updated))
	}

	want := storage.Invoice{ID: "inv-1", CustomerID: "c1", AmountCents: 5000, Status: "pending"}
	if gateway.updated[0] != want {
		t.Fatalf("updated = %+v, want %+v", gateway.updated[0], want)
	}
}

func TestUpdateInvoiceFailuresDoNotRedirect(t *testing.T) {
	t.Parallel()

	invalid := newTestService(&fakeInvoiceGateway{}, &fakeCustomerGateway{})
	result := invalid.updateInvoice(context.Background(), "inv-1", url.Values{})
	if result.Redirects() {
		t.Fatal("invalid draft redirected")
	}
	if result.Message != "Missing Fields. Failed to Update Invoice." {
		t.Fatalf("message = %q", result.Message)
	}

	failing := newTestService(&fakeInvoiceGateway{updateErr: errors.New("locked")}, &fakeCustomerGateway{})
	logged := captureLog(&failing)
	result = failing.updateInvoice(context.Background(), "inv-1", validForm())
	if result.Redirects() {
		t.Fatal("persistence failure redirected")
	}
	if result.Message != "Database Error: Failed to Update Invoice." {
		t.Fatalf("message = %q", result.Message)
	}
	if len(*logged) != 1 || !strings.Contains((*logged)[0], "locked") {
		t.Fatalf("logged = %v, want one line carrying the store error", *logged)
	}
}

func TestDeleteInvoice(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{}
	svc := newTestService(gateway, &fakeCustomerGateway{})

	if err := svc.deleteInvoice(context.Background(), "inv-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(gateway.deleted) != 1 || gateway.deleted[0] != "inv-1" {
		t.Fatalf("deleted = %v", gateway.deleted)
	}

	if err := svc.deleteInvoice(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestListInvoicesPaginates(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{count: 13}
	svc := newTestService(gateway, &fakeCustomerGateway{})

	result, err := svc.listInvoices(context.Background(), "  lee ", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", result.TotalPages)
	}
	if result.Query != "lee" {
		t.Fatalf("query = %q, want trimmed", result.Query)
	}
	if gateway.lastFilter.Limit != 6 || gateway.lastFilter.Offset != 6 {
		t.Fatalf("filter = %+v", gateway.lastFilter)
	}
	if gateway.lastCount != "lee" {
		t.Fatalf("count query = %q", gateway.lastCount)
	}

	result, err = svc.listInvoices(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Page != 1 || gateway.lastFilter.Offset != 0 {
		t.Fatalf("page = %d offset = %d", result.Page, gateway.lastFilter.Offset)
	}
}

func TestListInvoicesPropagatesErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeInvoiceGateway{countErr: errors.New("offline")}, &fakeCustomerGateway{})
	if _, err := svc.listInvoices(context.Background(), "", 1); err == nil {
		t.Fatal("expected count error")
	}

	svc = newTestService(&fakeInvoiceGateway{listErr: errors.New("offline")}, &fakeCustomerGateway{})
	if _, err := svc.listInvoices(context.Background(), "", 1); err == nil {
		t.Fatal("expected list error")
	}
}

func TestInvoiceLookup(t *testing.T) {
	t.Parallel()

	gateway := &fakeInvoiceGateway{invoices: map[string]storage.Invoice{
		"inv-1": {ID: "inv-1", CustomerID: "c1", AmountCents: 5000, Status: "pending", Date: "2026-08-29"},
	}}
	svc := newTestService(gateway, &fakeCustomerGateway{})

	invoice, err := svc.invoice(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("invoice: %v", err)
	}
	if invoice.ID != "inv-1" {
		t.Fatalf("invoice = %+v", invoice)
	}

	if _, err := svc.invoice(context.Background(), "missing"); err == nil {
		t.Fatal("expected not found error")
	}
	if _, err := svc.invoice(context.Background(), ""); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestUnconfiguredModuleIsDegraded(t *testing.T) {
	t.Parallel()

	svc := newService(nil, nil)
	if _, err := svc.listInvoices(context.Background(), "", 1); err == nil {
		t.Fatal("expected unavailable error")
	}
	result := svc.createInvoice(context.Background(), validForm())
	if result.Redirects() {
		t.Fatal("degraded service redirected")
	}
}
