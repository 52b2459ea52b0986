// Package dashboard wires configuration and dependencies for the
// dashboard web service.
package dashboard

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ph1234-dev/acme-dashboard/internal/auth"
	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage/sqlite"
	"github.com/ph1234-dev/acme-dashboard/internal/platform/config"
	"github.com/ph1234-dev/acme-dashboard/internal/platform/otel"
	"github.com/ph1234-dev/acme-dashboard/internal/web"
	viewcache "github.com/ph1234-dev/acme-dashboard/internal/web/cache"
	dashboardmodule "github.com/ph1234-dev/acme-dashboard/internal/web/modules/dashboard"
	invoicesmodule "github.com/ph1234-dev/acme-dashboard/internal/web/modules/invoices"
	"github.com/ph1234-dev/acme-dashboard/internal/web/modules/publicauth"
)

const serviceName = "acme-dashboard"

// Config holds the dashboard command configuration.
type Config struct {
	HTTPAddr      string        `env:"ACME_DASHBOARD_HTTP_ADDR" envDefault:"localhost:8080"`
	DatabasePath  string        `env:"ACME_DASHBOARD_DB_PATH" envDefault:"dashboard.db"`
	SessionSecret string        `env:"ACME_DASHBOARD_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"ACME_DASHBOARD_SESSION_TTL" envDefault:"12h"`
	CacheTTL      time.Duration `env:"ACME_DASHBOARD_CACHE_TTL" envDefault:"1m"`
}

// ParseConfig loads configuration from the environment, then applies
// flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "session token lifetime")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "rendered view cache lifetime")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("ACME_DASHBOARD_SESSION_SECRET is required")
	}
	return cfg, nil
}

// Run starts the dashboard web service and blocks until the context is
// canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	sessions, err := auth.NewSessions([]byte(cfg.SessionSecret), cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}
	pageCache := viewcache.New(cfg.CacheTTL)

	server, err := web.NewServer(
		web.WithAddr(cfg.HTTPAddr),
		web.WithSessions(sessions),
		web.WithPublicModules(
			publicauth.New(
				publicauth.WithProvider(auth.NewStoreProvider(store)),
				publicauth.WithSessions(sessions),
			),
		),
		web.WithProtectedModules(
			dashboardmodule.New(
				dashboardmodule.WithOverview(store),
				dashboardmodule.WithCustomers(store),
				dashboardmodule.WithCache(pageCache),
			),
			invoicesmodule.New(
				invoicesmodule.WithInvoices(store),
				invoicesmodule.WithCustomers(store),
				invoicesmodule.WithCache(pageCache),
			),
		),
	)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.Run(ctx)
	})
	group.Go(func() error {
		if err := pageCache.Janitor(ctx, cfg.CacheTTL); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	return group.Wait()
}
