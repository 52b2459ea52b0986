// Package templates renders the dashboard's HTML pages and fragments.
package templates

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatCents renders an integer cent amount as a dollar string with
// grouping, e.g. 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	return moneyPrinter.Sprintf("$%.2f", float64(cents)/100)
}

// FormatDate renders an ISO date (2006-01-02) in short display form,
// e.g. "Aug 29, 2026". Unparseable input is returned unchanged.
func FormatDate(iso string) string {
	parsed, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return parsed.Format("Jan 2, 2006")
}
