package invoices

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	invoicedomain "github.com/ph1234-dev/acme-dashboard/internal/invoices"
	"github.com/ph1234-dev/acme-dashboard/internal/searchsync"
	viewcache "github.com/ph1234-dev/acme-dashboard/internal/web/cache"
	apperrors "github.com/ph1234-dev/acme-dashboard/internal/web/platform/errors"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/httpx"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
	webtemplates "github.com/ph1234-dev/acme-dashboard/internal/web/templates"
)

// cacheScope groups every cached invoices view; mutations drop the
// whole scope.
const cacheScope = viewcache.ScopeInvoices

type handlers struct {
	service service
	cache   *viewcache.Cache
}

func newHandlers(s service, c *viewcache.Cache) handlers {
	return handlers{service: s, cache: c}
}

func (h handlers) handleListGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	query := strings.TrimSpace(r.URL.Query().Get(searchsync.QueryParam))
	page := parsePage(r.URL.Query().Get(searchsync.PageParam))

	cacheKey := fmt.Sprintf("page|%s|%d", query, page)
	if cached, ok := h.cache.Get(cacheScope, cacheKey); ok {
		_ = httpx.WriteHTML(w, http.StatusOK, string(cached))
		return
	}

	result, err := h.service.listInvoices(ctx, query, page)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	html, err := renderComponent(ctx, webtemplates.InvoicesPage(listingView(result)))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Put(cacheScope, cacheKey, []byte(html))
	_ = httpx.WriteHTML(w, http.StatusOK, html)
}

// handleSearchGet serves the table fragment swapped in by the debounced
// search input. The response replaces the browser URL with the
// normalized listing address so the filter survives reload and sharing.
func (h handlers) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	term := strings.TrimSpace(r.URL.Query().Get(searchsync.QueryParam))

	normalized := searchsync.NormalizeQuery(r.URL.Query(), term)
	result, err := h.service.listInvoices(ctx, term, 1)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	html, err := renderComponent(ctx, webtemplates.InvoicesTable(listingView(result)))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.SetHXReplaceURL(w, routepath.InvoicesWithQuery(normalized))
	_ = httpx.WriteHTML(w, http.StatusOK, html)
}

func (h handlers) handleCreateGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	view, err := h.formView(ctx, invoicedomain.Draft{}, nil, "")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.writePage(w, r, http.StatusOK, webtemplates.CreateInvoicePage(view))
}

func (h handlers) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "failed to parse invoice form"))
		return
	}

	result := h.service.createInvoice(ctx, r.PostForm)
	if result.Redirects() {
		h.invalidateViews()
		httpx.WriteRedirect(w, r, result.RedirectTo)
		return
	}

	view, err := h.formView(ctx, invoicedomain.Draft{}, result.Errors, result.Message)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view.CustomerID = r.PostForm.Get(invoicedomain.FieldCustomerID)
	view.Amount = r.PostForm.Get(invoicedomain.FieldAmount)
	view.Status = r.PostForm.Get(invoicedomain.FieldStatus)
	h.writePage(w, r, http.StatusBadRequest, webtemplates.CreateInvoicePage(view))
}

func (h handlers) handleEditGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	invoiceID := strings.TrimSpace(r.PathValue("invoiceID"))

	invoice, err := h.service.invoice(ctx, invoiceID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view, err := h.formView(ctx, invoicedomain.Draft{}, nil, "")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view.CustomerID = invoice.CustomerID
	view.Amount = formatCentsValue(invoice.AmountCents)
	view.Status = invoice.Status
	h.writePage(w, r, http.StatusOK, webtemplates.EditInvoicePage(invoiceID, view))
}

func (h handlers) handleEditPost(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	invoiceID := strings.TrimSpace(r.PathValue("invoiceID"))
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "failed to parse invoice form"))
		return
	}

	result := h.service.updateInvoice(ctx, invoiceID, r.PostForm)
	if result.Redirects() {
		h.invalidateViews()
		httpx.WriteRedirect(w, r, result.RedirectTo)
		return
	}

	view, err := h.formView(ctx, invoicedomain.Draft{}, result.Errors, result.Message)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	view.CustomerID = r.PostForm.Get(invoicedomain.FieldCustomerID)
	view.Amount = r.PostForm.Get(invoicedomain.FieldAmount)
	view.Status = r.PostForm.Get(invoicedomain.FieldStatus)
	h.writePage(w, r, http.StatusBadRequest, webtemplates.EditInvoicePage(invoiceID, view))
}

func (h handlers) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	invoiceID := strings.TrimSpace(r.PathValue("invoiceID"))

	if err := h.service.deleteInvoice(ctx, invoiceID); err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.invalidateViews()
	httpx.WriteRedirect(w, r, routepath.Invoices)
}

// invalidateViews drops every cached view an invoice write can change.
func (h handlers) invalidateViews() {
	h.cache.InvalidateScope(cacheScope)
	h.cache.InvalidateScope(viewcache.ScopeDashboard)
}

func (h handlers) formView(ctx context.Context, draft invoicedomain.Draft, errs invoicedomain.FieldErrors, message string) (webtemplates.InvoiceFormView, error) {
	customers, err := h.service.listCustomers(ctx)
	if err != nil {
		return webtemplates.InvoiceFormView{}, err
	}
	return webtemplates.InvoiceFormView{
		Customers:  customerOptions(customers),
		CustomerID: draft.CustomerID,
		Status:     string(draft.Status),
		Errors:     errs,
		Message:    message,
	}, nil
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	html, err := renderComponent(httpx.RequestContext(r), component)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteHTML(w, status, html)
}

func renderComponent(ctx context.Context, component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
