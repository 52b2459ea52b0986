package invoices

import (
	"net/url"
	"strconv"

	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
	"github.com/ph1234-dev/acme-dashboard/internal/searchsync"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
	webtemplates "github.com/ph1234-dev/acme-dashboard/internal/web/templates"
)

func listingView(page listing) webtemplates.InvoicesView {
	view := webtemplates.InvoicesView{
		Query:      page.Query,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Rows:       make([]webtemplates.InvoiceRowView, 0, len(page.Rows)),
	}
	for _, row := range page.Rows {
		view.Rows = append(view.Rows, invoiceRowView(row))
	}
	if page.Page > 1 {
		view.PrevURL = listingURL(page.Query, page.Page-1)
	}
	if page.Page < page.TotalPages {
		view.NextURL = listingURL(page.Query, page.Page+1)
	}
	return view
}

func invoiceRowView(row storage.InvoiceRow) webtemplates.InvoiceRowView {
	return webtemplates.InvoiceRowView{
		ID:            row.ID,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		Amount:        webtemplates.FormatCents(row.AmountCents),
		Date:          webtemplates.FormatDate(row.Date),
		Status:        row.Status,
		EditPath:      routepath.InvoiceEdit(row.ID),
		DeletePath:    routepath.InvoiceDelete(row.ID),
	}
}

func listingURL(query string, page int) string {
	params := url.Values{}
	if query != "" {
		params.Set(searchsync.QueryParam, query)
	}
	if page > 1 {
		params.Set(searchsync.PageParam, strconv.Itoa(page))
	}
	return routepath.InvoicesWithQuery(params)
}

func customerOptions(customers []storage.Customer) []webtemplates.CustomerOption {
	options := make([]webtemplates.CustomerOption, 0, len(customers))
	for _, customer := range customers {
		options = append(options, webtemplates.CustomerOption{ID: customer.ID, Name: customer.Name})
	}
	return options
}

// formatCentsValue renders stored cents as the plain decimal the amount
// input expects, e.g. 5000 -> "50.00".
func formatCentsValue(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
