package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// CustomerOption is one entry of the customer select.
type CustomerOption struct {
	ID   string
	Name string
}

// InvoiceFormView drives both the create and edit invoice forms. Field
// values are the raw strings being edited, so rejected input is echoed
// back unchanged.
type InvoiceFormView struct {
	Title       string
	Action      string
	SubmitLabel string
	Customers   []CustomerOption
	CustomerID  string
	Amount      string
	Status      string
	Errors      map[string][]string
	Message     string
}

// CreateInvoicePage renders the new-invoice form.
func CreateInvoicePage(view InvoiceFormView) templ.Component {
	view.Title = "Create Invoice"
	view.Action = routepath.InvoiceCreate
	view.SubmitLabel = "Create Invoice"
	return AppShell(view.Title, NavInvoices, invoiceForm(view))
}

// EditInvoicePage renders the edit form for an existing invoice.
func EditInvoicePage(invoiceID string, view InvoiceFormView) templ.Component {
	view.Title = "Edit Invoice"
	view.Action = routepath.InvoiceEdit(invoiceID)
	view.SubmitLabel = "Edit Invoice"
	return AppShell(view.Title, NavInvoices, invoiceForm(view))
}

func invoiceForm(view InvoiceFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action=%q>
<label for="customerId">Choose customer</label>
<select id="customerId" name="customerId" aria-describedby="customerId-error">
<option value="">Select a customer</option>
`, esc(view.Title), view.Action); err != nil {
			return err
		}
		for _, customer := range view.Customers {
			selected := ""
			if customer.ID == view.CustomerID {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value=%q%s>%s</option>
`, esc(customer.ID), selected, esc(customer.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
`); err != nil {
			return err
		}
		if err := fieldErrors(w, "customerId", view.Errors); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label for="amount">Choose an amount</label>
<input id="amount" name="amount" type="number" step="0.01" value=%q placeholder="Enter USD amount" aria-describedby="amount-error">
`, esc(view.Amount)); err != nil {
			return err
		}
		if err := fieldErrors(w, "amount", view.Errors); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<fieldset aria-describedby="status-error">
<legend>Set the invoice status</legend>
`); err != nil {
			return err
		}
		for _, status := range []string{"pending", "paid"} {
			checked := ""
			if status == view.Status {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w, `<label><input type="radio" name="status" value=%q%s> %s</label>
`, status, checked, esc(status)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</fieldset>
`); err != nil {
			return err
		}
		if err := fieldErrors(w, "status", view.Errors); err != nil {
			return err
		}

		if view.Message != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error" aria-live="polite">%s</p>
`, esc(view.Message)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `<div class="actions">
<a class="button" href=%q>Cancel</a>
<button type="submit" class="button primary">%s</button>
</div>
</form>
`, routepath.Invoices, esc(view.SubmitLabel))
		return err
	})
}

func fieldErrors(w io.Writer, field string, errs map[string][]string) error {
	messages := errs[field]
	if len(messages) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<div id="%s-error" aria-live="polite">
`, field); err != nil {
		return err
	}
	for _, message := range messages {
		if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>
`, esc(message)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>
`)
	return err
}
