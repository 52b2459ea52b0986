package invoices

import (
	"context"

	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
)

type fakeInvoiceGateway struct {
	invoices map[string]storage.Invoice
	rows     []storage.InvoiceRow
	count    int64

	createErr error
	updateErr error
	deleteErr error
	listErr   error
	countErr  error

	created    []storage.Invoice
	updated    []storage.Invoice
	deleted    []string
	lastFilter storage.InvoiceFilter
	lastCount  string
}

func (f *fakeInvoiceGateway) CreateInvoice(_ context.Context, invoice storage.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, invoice)
	return nil
}

func (f *fakeInvoiceGateway) UpdateInvoice(_ context.Context, invoice storage.Invoice) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, invoice)
	return nil
}

func (f *fakeInvoiceGateway) DeleteInvoice(_ context.Context, invoiceID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, invoiceID)
	return nil
}

func (f *fakeInvoiceGateway) GetInvoice(_ context.Context, invoiceID string) (storage.Invoice, bool, error) {
	invoice, ok := f.invoices[invoiceID]
	return invoice, ok, nil
}

func (f *fakeInvoiceGateway) ListInvoices(_ context.Context, filter storage.InvoiceFilter) ([]storage.InvoiceRow, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeInvoiceGateway) CountInvoices(_ context.Context, query string) (int64, error) {
	f.lastCount = query
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

type fakeCustomerGateway struct {
	customers []storage.Customer
	err       error
}

func (f *fakeCustomerGateway) ListCustomers(context.Context) ([]storage.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}
