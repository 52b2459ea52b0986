package invoices

import (
	"net/http"

	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Invoices, h.handleListGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.InvoicesPrefix+"{$}", h.handleListGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.InvoicesSearch, h.handleSearchGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.InvoiceCreate, h.handleCreateGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.InvoiceCreate, h.handleCreatePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.InvoiceEditPattern, h.handleEditGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.InvoiceEditPattern, h.handleEditPost)
	mux.HandleFunc(http.MethodPost+" "+routepath.InvoiceDeletePattern, h.handleDeletePost)
}
