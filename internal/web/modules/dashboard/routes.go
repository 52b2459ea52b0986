package dashboard

import (
	"net/http"

	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleIndexGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleIndexGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.Customers, h.handleCustomersGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{rest...}", h.handleNotFound)
}
