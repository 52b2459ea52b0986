// Package invoices defines the invoice domain model and the form
// validation used by the dashboard's mutation actions.
package invoices

// Status enumerates invoice payment states.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// ParseStatus maps a raw form value onto a known status.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending:
		return StatusPending, true
	case StatusPaid:
		return StatusPaid, true
	default:
		return "", false
	}
}

// DateFormat is the calendar-date layout stored with each invoice.
const DateFormat = "2006-01-02"

// Draft is a validated, unit-normalized invoice mutation payload.
// Amount is carried in integer cents to avoid floating-point drift.
type Draft struct {
	CustomerID  string
	AmountCents int64
	Status      Status
}
