// Package storage defines persistence contracts for the dashboard.
package storage

import "context"

// Invoice is one persisted invoice row. Amount is stored in integer
// cents; Date is a YYYY-MM-DD calendar date.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string
	Date        string
}

// InvoiceRow is a listing row joined with its customer.
type InvoiceRow struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	AmountCents   int64
	Status        string
	Date          string
}

// Customer is one persisted customer row.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// User is one dashboard account with a bcrypt password hash.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// InvoiceFilter bounds a filtered listing read.
type InvoiceFilter struct {
	Query  string
	Limit  int
	Offset int
}

// Overview aggregates the dashboard card data.
type Overview struct {
	InvoiceCount  int64
	CustomerCount int64
	PaidCents     int64
	PendingCents  int64
}

// InvoiceStore persists and reads invoices.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, invoice Invoice) error
	UpdateInvoice(ctx context.Context, invoice Invoice) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
	GetInvoice(ctx context.Context, invoiceID string) (Invoice, bool, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]InvoiceRow, error)
	CountInvoices(ctx context.Context, query string) (int64, error)
}

// CustomerStore reads and seeds customers.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	PutCustomer(ctx context.Context, customer Customer) error
}

// UserStore reads and seeds dashboard accounts.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (User, bool, error)
	PutUser(ctx context.Context, user User) error
}

// DashboardStore reads aggregate card data.
type DashboardStore interface {
	GetOverview(ctx context.Context) (Overview, error)
}

// Store combines every persistence surface backed by one database.
type Store interface {
	InvoiceStore
	CustomerStore
	UserStore
	DashboardStore
	Close() error
}
