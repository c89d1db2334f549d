// Package render produces the terminal, JSON, and NDJSON views of a
// footprint report. All human-readable numbers flow through a
// locale-aware Formatter so grouping and decimal separators follow the
// configured locale.
package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greensteps/ecofoot/internal/footprint"
)

// Display precision bounds. Tonne values never show more than two
// fractional digits.
const (
	DefaultPrecision = 2
	maxPrecision     = 2
)

// Formatter renders numbers for a single locale.
type Formatter struct {
	printer   *message.Printer
	precision int
}

// NewFormatter creates a Formatter for the given BCP 47 locale tag.
// Unknown or empty tags fall back to English rather than failing the
// render.
func NewFormatter(locale string, precision int) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	if precision < 0 {
		precision = 0
	}
	if precision > maxPrecision {
		precision = maxPrecision
	}
	return &Formatter{
		printer:   message.NewPrinter(tag),
		precision: precision,
	}
}

// Float formats a value with the configured precision and the locale's
// grouping and decimal separators.
func (f *Formatter) Float(value float64) string {
	verb := fmt.Sprintf("%%.%df", f.precision)
	return f.printer.Sprintf(verb, value)
}

// Tonnes formats an annual emission value, e.g. "22.72 t".
func (f *Formatter) Tonnes(value float64) string {
	return f.printer.Sprintf("%s t", f.Float(value))
}

// Kg formats a kilogram value, e.g. "1.90 kg".
func (f *Formatter) Kg(value float64) string {
	return f.printer.Sprintf("%s kg", f.Float(value))
}

// Km formats a distance, always with one fractional digit.
func (f *Formatter) Km(value float64) string {
	return f.printer.Sprintf("%.1f km", value)
}

// Percent formats a share with one fractional digit, e.g. "37.0%".
func (f *Formatter) Percent(value float64) string {
	return f.printer.Sprintf("%.1f%%", value)
}

// Factor formats a multiplier with two fractional digits, e.g. "0.94".
func (f *Formatter) Factor(value float64) string {
	return f.printer.Sprintf("%.2f", value)
}

// Int formats an integer with the locale's grouping separators.
func (f *Formatter) Int(value int) string {
	return f.printer.Sprintf("%d", value)
}

// Share returns a category's percentage of the subtotal. A zero
// subtotal yields zero to avoid NaN in rendered output.
func Share(amount footprint.CategoryAmount, subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	return amount.Tonnes / subtotal * 100 //nolint:mnd // Percentage calculation.
}
