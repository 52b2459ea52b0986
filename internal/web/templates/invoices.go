package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// InvoiceRowView is one rendered row of the invoices table.
type InvoiceRowView struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Amount        string
	Date          string
	Status        string
	EditPath      string
	DeletePath    string
}

// InvoicesView drives the invoices listing page and its table fragment.
type InvoicesView struct {
	Query      string
	Page       int
	TotalPages int
	Rows       []InvoiceRowView
	PrevURL    string
	NextURL    string
}

// InvoicesPage renders the full invoices listing inside the app shell.
func InvoicesPage(view InvoicesView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Invoices</h1>
<div class="toolbar">
<input type="search" name="query" value=%q placeholder="Search invoices..."
 hx-get=%q hx-trigger="input changed delay:300ms" hx-target="#invoices-table" hx-swap="outerHTML">
<a class="button" href=%q>Create Invoice</a>
</div>
`, esc(view.Query), routepath.InvoicesSearch, routepath.InvoiceCreate); err != nil {
			return err
		}
		return InvoicesTable(view).Render(ctx, w)
	})
	return AppShell("Invoices", NavInvoices, body)
}

// InvoicesTable renders the table and pagination fragment swapped in by
// search requests.
func InvoicesTable(view InvoicesView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="invoices-table">
`); err != nil {
			return err
		}
		if len(view.Rows) == 0 {
			if _, err := io.WriteString(w, `<p class="empty">No invoices found.</p>
`); err != nil {
				return err
			}
		} else {
			if err := invoiceRows(w, view.Rows); err != nil {
				return err
			}
		}
		if err := pagination(w, view); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>
`)
		return err
	})
}

func invoiceRows(w io.Writer, rows []InvoiceRowView) error {
	if _, err := io.WriteString(w, `<table class="invoices">
<thead>
<tr><th>Customer</th><th>Email</th><th>Amount</th><th>Date</th><th>Status</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td><span class="status status-%s">%s</span></td>
<td>
<a class="button" href=%q>Edit</a>
<form method="post" action=%q>
<button type="submit" class="button">Delete</button>
</form>
</td>
</tr>
`, esc(row.CustomerName), esc(row.CustomerEmail), esc(row.Amount), esc(row.Date),
			esc(row.Status), esc(row.Status), row.EditPath, row.DeletePath); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody>
</table>
`)
	return err
}

func pagination(w io.Writer, view InvoicesView) error {
	if view.TotalPages <= 1 {
		return nil
	}
	if _, err := io.WriteString(w, `<nav class="pagination">
`); err != nil {
		return err
	}
	if view.PrevURL != "" {
		if _, err := fmt.Fprintf(w, `<a href=%q>Previous</a>
`, view.PrevURL); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<span>Page %d of %d</span>
`, view.Page, view.TotalPages); err != nil {
		return err
	}
	if view.NextURL != "" {
		if _, err := fmt.Fprintf(w, `<a href=%q>Next</a>
`, view.NextURL); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>
`)
	return err
}
