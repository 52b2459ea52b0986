package dashboard

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	viewcache "github.com/ph1234-dev/acme-dashboard/internal/web/cache"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/httpx"
	webtemplates "github.com/ph1234-dev/acme-dashboard/internal/web/templates"
)

type handlers struct {
	service service
	cache   *viewcache.Cache
}

func newHandlers(s service, c *viewcache.Cache) handlers {
	return handlers{service: s, cache: c}
}

func (h handlers) handleIndexGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	if cached, ok := h.cache.Get(viewcache.ScopeDashboard, "overview"); ok {
		_ = httpx.WriteHTML(w, http.StatusOK, string(cached))
		return
	}

	view, err := h.service.overviewView(ctx)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.writeCached(w, r, viewcache.ScopeDashboard, "overview", webtemplates.DashboardPage(view))
}

func (h handlers) handleCustomersGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	if cached, ok := h.cache.Get(viewcache.ScopeCustomers, "list"); ok {
		_ = httpx.WriteHTML(w, http.StatusOK, string(cached))
		return
	}

	rows, err := h.service.customerRows(ctx)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.writeCached(w, r, viewcache.ScopeCustomers, "list", webtemplates.CustomersPage(rows))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

func (h handlers) writeCached(w http.ResponseWriter, r *http.Request, scope, key string, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Put(scope, key, buf.Bytes())
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}
