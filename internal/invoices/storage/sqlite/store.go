// Package sqlite provides SQLite-backed persistence for the dashboard.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage/sqlite/migrations"
	sqlitemigrate "github.com/ph1234-dev/acme-dashboard/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides a SQLite-backed store implementing dashboard storage
// interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a dashboard SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS, "")
}

// CreateInvoice inserts one invoice row. Every value is bound as a
// positional parameter.
func (s *Store) CreateInvoice(ctx context.Context, invoice storage.Invoice) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(invoice.ID) == "" {
		return fmt.Errorf("invoice id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO invoices (id, customer_id, amount, status, date)
		 VALUES (?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.CustomerID,
		invoice.AmountCents,
		invoice.Status,
		invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// UpdateInvoice rewrites the mutable columns of one invoice keyed by id.
func (s *Store) UpdateInvoice(ctx context.Context, invoice storage.Invoice) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(invoice.ID) == "" {
		return fmt.Errorf("invoice id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE invoices
		 SET customer_id = ?, amount = ?, status = ?
		 WHERE id = ?`,
		invoice.CustomerID,
		invoice.AmountCents,
		invoice.Status,
		invoice.ID,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// DeleteInvoice removes one invoice by id. Deleting a missing id is a
// no-op, not an error.
func (s *Store) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return fmt.Errorf("invoice id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, invoiceID); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetInvoice loads one invoice by id.
func (s *Store) GetInvoice(ctx context.Context, invoiceID string) (storage.Invoice, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Invoice{}, false, fmt.Errorf("storage is not configured")
	}
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return storage.Invoice{}, false, fmt.Errorf("invoice id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, customer_id, amount, status, date
		 FROM invoices
		 WHERE id = ?`,
		invoiceID,
	)

	var invoice storage.Invoice
	if err := row.Scan(&invoice.ID, &invoice.CustomerID, &invoice.AmountCents, &invoice.Status, &invoice.Date); err != nil {
		if err == sql.ErrNoRows {
			return storage.Invoice{}, false, nil
		}
		return storage.Invoice{}, false, fmt.Errorf("get invoice: %w", err)
	}
	return invoice, true, nil
}

// ListInvoices returns listing rows matching the free-text filter,
// newest first, bounded by limit and offset.
func (s *Store) ListInvoices(ctx context.Context, filter storage.InvoiceFilter) ([]storage.InvoiceRow, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if filter.Limit <= 0 {
		filter.Limit = 6
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	pattern := likePattern(filter.Query)
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT invoices.id, customers.name, customers.email, invoices.amount, invoices.status, invoices.date
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE customers.name LIKE ?
		    OR customers.email LIKE ?
		    OR CAST(invoices.amount AS TEXT) LIKE ?
		    OR invoices.date LIKE ?
		    OR invoices.status LIKE ?
		 ORDER BY invoices.date DESC, invoices.id
		 LIMIT ? OFFSET ?`,
		pattern, pattern, pattern, pattern, pattern,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	listing := make([]storage.InvoiceRow, 0)
	for rows.Next() {
		var row storage.InvoiceRow
		if err := rows.Scan(&row.ID, &row.CustomerName, &row.CustomerEmail, &row.AmountCents, &row.Status, &row.Date); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		listing = append(listing, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return listing, nil
}

// CountInvoices returns the number of rows matching the free-text filter.
func (s *Store) CountInvoices(ctx context.Context, query string) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	pattern := likePattern(query)
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*)
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE customers.name LIKE ?
		    OR customers.email LIKE ?
		    OR CAST(invoices.amount AS TEXT) LIKE ?
		    OR invoices.date LIKE ?
		    OR invoices.status LIKE ?`,
		pattern, pattern, pattern, pattern, pattern,
	)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// ListCustomers returns every customer ordered by name.
func (s *Store) ListCustomers(ctx context.Context) ([]storage.Customer, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, image_url FROM customers ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	customers := make([]storage.Customer, 0)
	for rows.Next() {
		var customer storage.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// PutCustomer upserts one customer row.
func (s *Store) PutCustomer(ctx context.Context, customer storage.Customer) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(customer.ID) == "" {
		return fmt.Errorf("customer id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO customers (id, name, email, image_url)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   email = excluded.email,
		   image_url = excluded.image_url`,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("put customer: %w", err)
	}
	return nil
}

// GetUserByEmail loads one account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (storage.User, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.User{}, false, fmt.Errorf("storage is not configured")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return storage.User{}, false, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, password_hash FROM users WHERE email = ?`,
		email,
	)

	var user storage.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return storage.User{}, false, nil
		}
		return storage.User{}, false, fmt.Errorf("get user by email: %w", err)
	}
	return user, true, nil
}

// PutUser upserts one account row.
func (s *Store) PutUser(ctx context.Context, user storage.User) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(user.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	email := strings.TrimSpace(strings.ToLower(user.Email))
	if email == "" {
		return fmt.Errorf("user email is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   email = excluded.email,
		   password_hash = excluded.password_hash`,
		user.ID,
		user.Name,
		email,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// GetOverview aggregates the dashboard card data in one query.
func (s *Store) GetOverview(ctx context.Context) (storage.Overview, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Overview{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT
		   (SELECT COUNT(*) FROM invoices),
		   (SELECT COUNT(*) FROM customers),
		   (SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid'),
		   (SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending')`,
	)

	var overview storage.Overview
	if err := row.Scan(&overview.InvoiceCount, &overview.CustomerCount, &overview.PaidCents, &overview.PendingCents); err != nil {
		return storage.Overview{}, fmt.Errorf("get overview: %w", err)
	}
	return overview, nil
}

func likePattern(query string) string {
	return "%" + strings.TrimSpace(query) + "%"
}

var _ storage.Store = (*Store)(nil)
