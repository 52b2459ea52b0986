package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ph1234-dev/acme-dashboard/internal/auth"
	"github.com/ph1234-dev/acme-dashboard/internal/web/module"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/sessioncookie"
)

type staticModule struct {
	id     string
	prefix string
	body   string
}

func (m staticModule) ID() string { return m.id }

func (m staticModule) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	body := m.body
	mux.HandleFunc(http.MethodGet+" "+m.prefix, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}

type reportingModule struct {
	staticModule
	healthy bool
}

func (m reportingModule) Healthy() bool { return m.healthy }

func testSessions(t *testing.T) *auth.Sessions {
	t.Helper()
	sessions, err := auth.NewSessions([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("new sessions: %v", err)
	}
	return sessions
}

func newTestServer(t *testing.T, sessions *auth.Sessions) *Server {
	t.Helper()
	server, err := NewServer(
		WithSessions(sessions),
		WithPublicModules(staticModule{id: "pub", prefix: "/login", body: "login page"}),
		WithProtectedModules(staticModule{id: "priv", prefix: "/dashboard", body: "dashboard page"}),
	)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, testSessions(t))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestHealthReportsDegradedModule(t *testing.T) {
	t.Parallel()

	degraded := reportingModule{
		staticModule: staticModule{id: "invoices", prefix: "/dashboard/invoices", body: "listing"},
		healthy:      false,
	}
	server, err := NewServer(
		WithSessions(testSessions(t)),
		WithPublicModules(staticModule{id: "pub", prefix: "/login", body: "login page"}),
		WithProtectedModules(degraded),
	)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if got := rec.Body.String(); got != "degraded: invoices" {
		t.Fatalf("body = %q", got)
	}
}

func TestHealthReportsHealthyModules(t *testing.T) {
	t.Parallel()

	healthy := reportingModule{
		staticModule: staticModule{id: "invoices", prefix: "/dashboard/invoices", body: "listing"},
		healthy:      true,
	}
	server, err := NewServer(
		WithSessions(testSessions(t)),
		WithProtectedModules(healthy),
	)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestStaticAssetsServed(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, testSessions(t))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".sidenav") {
		t.Fatal("stylesheet content missing")
	}
}

func TestPublicMountServesAnonymously(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, testSessions(t))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "login page" {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestProtectedMountRedirectsAnonymous(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, testSessions(t))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("location = %q", got)
	}
}

func TestProtectedMountServesSignedIn(t *testing.T) {
	t.Parallel()

	sessions := testSessions(t)
	server := newTestServer(t, sessions)

	token, err := sessions.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "dashboard page" {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestProtectedMountClearsBadCookie(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, testSessions(t))
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("cookies = %+v, want expired session cookie", cookies)
	}
}
