package invoices

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Form field names accepted by ParseDraft.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooSmall = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."
)

// FieldErrors maps form field names to user-facing validation messages.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Has reports whether the field carries at least one message.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// First returns the first message recorded for a field.
func (fe FieldErrors) First(field string) string {
	if len(fe[field]) == 0 {
		return ""
	}
	return fe[field][0]
}

// ParseDraft validates raw form fields into a typed draft. On failure it
// returns the zero draft and one or more field-scoped messages; no
// partial drafts escape.
func ParseDraft(form url.Values) (Draft, FieldErrors) {
	errs := FieldErrors{}

	customerID := strings.TrimSpace(form.Get(FieldCustomerID))
	if customerID == "" {
		errs.Add(FieldCustomerID, msgSelectCustomer)
	}

	amountCents, ok := parseAmountCents(form.Get(FieldAmount))
	if !ok || amountCents <= 0 {
		errs.Add(FieldAmount, msgAmountTooSmall)
	}

	status, ok := ParseStatus(form.Get(FieldStatus))
	if !ok {
		errs.Add(FieldStatus, msgSelectStatus)
	}

	if len(errs) > 0 {
		return Draft{}, errs
	}
	return Draft{CustomerID: customerID, AmountCents: amountCents, Status: status}, nil
}

// parseAmountCents coerces a decimal currency string to integer cents.
func parseAmountCents(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return int64(math.Round(value * 100)), true
}
