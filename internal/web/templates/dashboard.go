package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// OverviewView drives the dashboard summary cards.
type OverviewView struct {
	Collected string
	Pending   string
	Invoices  string
	Customers string
}

// CustomerRowView is one rendered row of the customers table.
type CustomerRowView struct {
	Name     string
	Email    string
	ImageURL string
}

// DashboardPage renders the overview cards inside the app shell.
func DashboardPage(view OverviewView) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		cards := []struct {
			label string
			value string
		}{
			{label: "Collected", value: view.Collected},
			{label: "Pending", value: view.Pending},
			{label: "Total Invoices", value: view.Invoices},
			{label: "Total Customers", value: view.Customers},
		}

		if _, err := io.WriteString(w, `<h1>Dashboard</h1>
<div class="cards">
`); err != nil {
			return err
		}
		for _, card := range cards {
			if _, err := fmt.Fprintf(w, `<div class="card">
<h2>%s</h2>
<p class="card-value">%s</p>
</div>
`, esc(card.label), esc(card.value)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>
`)
		return err
	})
	return AppShell("Dashboard", NavDashboard, body)
}

// CustomersPage renders the customers table inside the app shell.
func CustomersPage(customers []CustomerRowView) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Customers</h1>
`); err != nil {
			return err
		}
		if len(customers) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No customers yet.</p>
`)
			return err
		}
		if _, err := io.WriteString(w, `<table class="customers">
<thead>
<tr><th>Name</th><th>Email</th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}
		for _, customer := range customers {
			if _, err := fmt.Fprintf(w, `<tr>
<td><img src=%q alt="" class="avatar"> %s</td>
<td>%s</td>
</tr>
`, esc(customer.ImageURL), esc(customer.Name), esc(customer.Email)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	})
	return AppShell("Customers", NavCustomers, body)
}
