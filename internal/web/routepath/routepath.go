// Package routepath stores canonical HTTP paths for dashboard modules.
package routepath

import "net/url"

const (
	Root   = "/"
	Login  = "/login"
	Logout = "/logout"
	Health = "/up"

	Dashboard       = "/dashboard"
	DashboardPrefix = "/dashboard/"

	Invoices             = "/dashboard/invoices"
	InvoicesPrefix       = "/dashboard/invoices/"
	InvoicesSearch       = "/dashboard/invoices/search"
	InvoiceCreate        = "/dashboard/invoices/create"
	InvoiceEditPattern   = InvoicesPrefix + "{invoiceID}/edit"
	InvoiceDeletePattern = InvoicesPrefix + "{invoiceID}/delete"

	Customers = "/dashboard/customers"
)

// InvoiceEdit returns the edit path for one invoice.
func InvoiceEdit(invoiceID string) string {
	return InvoicesPrefix + url.PathEscape(invoiceID) + "/edit"
}

// InvoiceDelete returns the delete path for one invoice.
func InvoiceDelete(invoiceID string) string {
	return InvoicesPrefix + url.PathEscape(invoiceID) + "/delete"
}

// InvoicesWithQuery returns the listing path carrying an encoded query string.
func InvoicesWithQuery(query url.Values) string {
	encoded := query.Encode()
	if encoded == "" {
		return Invoices
	}
	return Invoices + "?" + encoded
}
