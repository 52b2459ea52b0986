// Package dashboard serves the overview cards and the customers page.
package dashboard

import (
	"net/http"

	viewcache "github.com/ph1234-dev/acme-dashboard/internal/web/cache"
	"github.com/ph1234-dev/acme-dashboard/internal/web/module"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// Option configures a dashboard module.
type Option func(*Module)

// WithOverview sets the overview gateway.
func WithOverview(g OverviewGateway) Option {
	return func(m *Module) { m.overview = g }
}

// WithCustomers sets the customer gateway.
func WithCustomers(g CustomerGateway) Option {
	return func(m *Module) { m.customers = g }
}

// WithCache sets the rendered-view cache.
func WithCache(c *viewcache.Cache) Option {
	return func(m *Module) { m.cache = c }
}

// Module provides authenticated overview routes.
type Module struct {
	overview  OverviewGateway
	customers CustomerGateway
	cache     *viewcache.Cache
}

// New returns a dashboard module configured by the given options.
// Without options the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the module has operational gateways.
func (m Module) Healthy() bool {
	return m.overview != nil && m.customers != nil
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.overview, m.customers)
	h := newHandlers(svc, m.cache)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Dashboard, Handler: mux}, nil
}
