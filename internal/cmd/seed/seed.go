// Package seed loads demo data into the dashboard database.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/ph1234-dev/acme-dashboard/internal/auth"
	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage/sqlite"
	"github.com/ph1234-dev/acme-dashboard/internal/platform/config"
)

// Config holds seed command configuration.
type Config struct {
	DatabasePath string `env:"ACME_DASHBOARD_DB_PATH" envDefault:"dashboard.db"`
	Email        string `env:"ACME_DASHBOARD_SEED_EMAIL" envDefault:"user@nextmail.com"`
	Password     string `env:"ACME_DASHBOARD_SEED_PASSWORD" envDefault:"123456"`
}

// ParseConfig loads configuration from the environment, then applies
// flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "demo account email")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "demo account password")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the demo account, customers, and invoices. Reruns upsert
// the same customers and add fresh invoices.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	if err := seedUser(ctx, store, cfg.Email, cfg.Password); err != nil {
		return err
	}
	customers, err := seedCustomers(ctx, store)
	if err != nil {
		return err
	}
	if err := seedInvoices(ctx, store, customers); err != nil {
		return err
	}

	fmt.Fprintf(out, "seeded %s with demo account %s\n", cfg.DatabasePath, cfg.Email)
	return nil
}

func seedUser(ctx context.Context, store storage.UserStore, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user := storage.User{
		ID:           uuid.NewString(),
		Name:         "User",
		Email:        email,
		PasswordHash: hash,
	}
	if err := store.PutUser(ctx, user); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}

func seedCustomers(ctx context.Context, store storage.CustomerStore) ([]storage.Customer, error) {
	customers := []storage.Customer{
		{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
	for _, customer := range customers {
		if err := store.PutCustomer(ctx, customer); err != nil {
			return nil, fmt.Errorf("seed customer %s: %w", customer.Name, err)
		}
	}
	return customers, nil
}

func seedInvoices(ctx context.Context, store storage.InvoiceStore, customers []storage.Customer) error {
	invoices := []struct {
		customer    int
		amountCents int64
		status      string
		date        string
	}{
		{customer: 0, amountCents: 15795, status: "pending", date: "2022-12-06"},
		{customer: 1, amountCents: 20348, status: "pending", date: "2022-11-14"},
		{customer: 4, amountCents: 3040, status: "paid", date: "2022-10-29"},
		{customer: 3, amountCents: 44800, status: "paid", date: "2023-09-10"},
		{customer: 5, amountCents: 34577, status: "pending", date: "2023-08-05"},
		{customer: 2, amountCents: 54246, status: "pending", date: "2023-07-16"},
		{customer: 0, amountCents: 66600, status: "pending", date: "2023-06-27"},
		{customer: 3, amountCents: 32545, status: "paid", date: "2023-06-09"},
		{customer: 4, amountCents: 1250, status: "paid", date: "2023-06-17"},
		{customer: 5, amountCents: 8546, status: "paid", date: "2023-06-07"},
		{customer: 1, amountCents: 500, status: "paid", date: "2023-08-19"},
		{customer: 5, amountCents: 8945, status: "paid", date: "2023-06-03"},
		{customer: 2, amountCents: 1000, status: "paid", date: "2022-06-05"},
	}
	for _, row := range invoices {
		invoice := storage.Invoice{
			ID:          uuid.NewString(),
			CustomerID:  customers[row.customer].ID,
			AmountCents: row.amountCents,
			Status:      row.status,
			Date:        row.date,
		}
		if err := store.CreateInvoice(ctx, invoice); err != nil {
			return fmt.Errorf("seed invoice for %s: %w", customers[row.customer].Name, err)
		}
	}
	return nil
}
