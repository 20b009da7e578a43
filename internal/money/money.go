// Package money provides the currency formatting capability consumed by the
// calculation path. The capability is injected where it is needed rather than
// assumed globally available, so the host environment decides how amounts are
// rendered.
package money

// Formatter renders a numeric amount as a currency string for display.
// Implementations own all display concerns: rounding to the currency's
// scale, symbol placement, and locale-specific digit separators.
type Formatter interface {
	Format(amount float64) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(amount float64) string

// Format calls the wrapped function.
func (f FormatterFunc) Format(amount float64) string {
	return f(amount)
}
