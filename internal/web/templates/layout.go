package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// Nav section identifiers used to highlight the active link.
const (
	NavDashboard = "dashboard"
	NavInvoices  = "invoices"
	NavCustomers = "customers"
)

func esc(value string) string {
	return templ.EscapeString(value)
}

// AppShell wraps a signed-in page body with the document head, side
// navigation, and logout control.
func AppShell(title, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | Acme Dashboard</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<div class="shell">
`, esc(title)); err != nil {
			return err
		}
		if err := sideNav(w, active); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="content">
`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>
</div>
</body>
</html>
`)
		return err
	})
}

func sideNav(w io.Writer, active string) error {
	links := []struct {
		section string
		href    string
		label   string
	}{
		{section: NavDashboard, href: routepath.Dashboard, label: "Home"},
		{section: NavInvoices, href: routepath.Invoices, label: "Invoices"},
		{section: NavCustomers, href: routepath.Customers, label: "Customers"},
	}

	if _, err := io.WriteString(w, `<nav class="sidenav">
<a class="brand" href="`+routepath.Dashboard+`">Acme</a>
`); err != nil {
		return err
	}
	for _, link := range links {
		class := "nav-link"
		if link.section == active {
			class = "nav-link active"
		}
		if _, err := fmt.Fprintf(w, `<a class=%q href=%q>%s</a>
`, class, link.href, esc(link.label)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `<form method="post" action=%q>
<button type="submit" class="nav-link">Sign Out</button>
</form>
</nav>
`, routepath.Logout)
	return err
}
