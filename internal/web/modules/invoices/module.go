// Package invoices serves the invoice listing, search, and mutation
// routes of the dashboard.
package invoices

import (
	"net/http"

	viewcache "github.com/ph1234-dev/acme-dashboard/internal/web/cache"
	"github.com/ph1234-dev/acme-dashboard/internal/web/module"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// Option configures an invoices module.
type Option func(*Module)

// WithInvoices sets the invoice gateway.
func WithInvoices(g InvoiceGateway) Option {
	return func(m *Module) { m.invoices = g }
}

// WithCustomers sets the customer gateway used by the form select.
func WithCustomers(g CustomerGateway) Option {
	return func(m *Module) { m.customers = g }
}

// WithCache sets the rendered-view cache.
func WithCache(c *viewcache.Cache) Option {
	return func(m *Module) { m.cache = c }
}

// Module provides authenticated invoice routes.
type Module struct {
	invoices  InvoiceGateway
	customers CustomerGateway
	cache     *viewcache.Cache
}

// New returns an invoices module configured by the given options.
// Without options the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "invoices" }

// Healthy reports whether the module has operational gateways.
func (m Module) Healthy() bool {
	return m.invoices != nil && m.customers != nil
}

// Mount wires invoice route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.invoices, m.customers)
	h := newHandlers(svc, m.cache)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Invoices, Handler: mux}, nil
}
