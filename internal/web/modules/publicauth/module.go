// Package publicauth serves the sign-in, sign-out, and root redirect
// routes of the dashboard.
package publicauth

import (
	"net/http"

	"github.com/ph1234-dev/acme-dashboard/internal/auth"
	"github.com/ph1234-dev/acme-dashboard/internal/web/module"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// Option configures a publicauth module.
type Option func(*Module)

// WithProvider sets the identity provider used by sign-in.
func WithProvider(p auth.IdentityProvider) Option {
	return func(m *Module) { m.provider = p }
}

// WithSessions sets the session token signer.
func WithSessions(s *auth.Sessions) Option {
	return func(m *Module) { m.sessions = s }
}

// Module provides public authentication routes.
type Module struct {
	provider auth.IdentityProvider
	sessions *auth.Sessions
}

// New returns a publicauth module configured by the given options.
// Without options the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public-auth" }

// Healthy reports whether sign-in is operational.
func (m Module) Healthy() bool {
	return m.provider != nil && m.sessions != nil
}

// Mount wires authentication route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.provider, m.sessions)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
