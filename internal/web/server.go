// Package web composes dashboard modules into one HTTP server.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ph1234-dev/acme-dashboard/internal/auth"
	"github.com/ph1234-dev/acme-dashboard/internal/web/module"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/httpx"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/sessioncookie"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

const shutdownTimeout = 10 * time.Second

//go:embed assets
var assetsFS embed.FS

// Option configures a server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithSessions sets the session verifier guarding protected mounts.
func WithSessions(sessions *auth.Sessions) Option {
	return func(s *Server) { s.sessions = sessions }
}

// WithPublicModules registers modules mounted without a session guard.
func WithPublicModules(modules ...module.Module) Option {
	return func(s *Server) { s.public = append(s.public, modules...) }
}

// WithProtectedModules registers modules that require a signed-in
// session; anonymous requests are redirected to the login page.
func WithProtectedModules(modules ...module.Module) Option {
	return func(s *Server) { s.protected = append(s.protected, modules...) }
}

// Server serves the dashboard over HTTP.
type Server struct {
	addr      string
	sessions  *auth.Sessions
	public    []module.Module
	protected []module.Module

	httpServer *http.Server
}

// NewServer mounts every registered module and prepares the listener.
func NewServer(opts ...Option) (*Server, error) {
	s := &Server{addr: ":8080"}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, s.handleHealth)

	staticFS, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	mux.Handle(http.MethodGet+" /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	for _, m := range s.public {
		if err := s.mount(mux, m, nil); err != nil {
			return nil, err
		}
	}
	guard := requireSession(s.sessions)
	for _, m := range s.protected {
		if err := s.mount(mux, m, guard); err != nil {
			return nil, err
		}
	}

	handler := httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic())
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// handleHealth reports aggregate availability. A module running in
// degraded mode marks the whole server unavailable.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	for _, m := range s.public {
		if reporter, ok := m.(module.HealthReporter); ok && !reporter.Healthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, "degraded: %s", m.ID())
			return
		}
	}
	for _, m := range s.protected {
		if reporter, ok := m.(module.HealthReporter); ok && !reporter.Healthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, "degraded: %s", m.ID())
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) mount(mux *http.ServeMux, m module.Module, guard httpx.Middleware) error {
	if m == nil {
		return fmt.Errorf("nil module")
	}
	mount, err := m.Mount()
	if err != nil {
		return fmt.Errorf("mount module %s: %w", m.ID(), err)
	}
	handler := mount.Handler
	if handler == nil {
		return fmt.Errorf("module %s has no handler", m.ID())
	}
	if guard != nil {
		handler = guard(handler)
	}

	prefix := strings.TrimSuffix(mount.Prefix, "/")
	if prefix == "" {
		mux.Handle("/", handler)
		return nil
	}
	mux.Handle(prefix, handler)
	mux.Handle(prefix+"/", handler)
	return nil
}

// requireSession redirects requests without a verifiable session cookie
// to the login page.
func requireSession(sessions *auth.Sessions) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions == nil {
				httpx.WriteRedirect(w, r, routepath.Login)
				return
			}
			token, ok := sessioncookie.Read(r)
			if !ok {
				httpx.WriteRedirect(w, r, routepath.Login)
				return
			}
			if _, err := sessions.Verify(token); err != nil {
				sessioncookie.Clear(w, r)
				httpx.WriteRedirect(w, r, routepath.Login)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Handler exposes the composed root handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return fmt.Errorf("server is not configured")
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("http server listening addr=%s", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	log.Printf("http server stopped addr=%s", s.httpServer.Addr)
	return nil
}
