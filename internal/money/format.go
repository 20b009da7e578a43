package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Style selects how the currency is identified in formatted output.
type Style int

const (
	// SymbolStyle renders the locale's currency symbol, e.g. "$24.98".
	SymbolStyle Style = iota
	// ISOStyle renders the ISO 4217 code, e.g. "USD 24.98".
	ISOStyle
)

// LocaleFormatter formats amounts for a single locale and currency pair.
// Amounts are rounded to the currency's standard scale before rendering so
// binary float artifacts never reach the display.
type LocaleFormatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
	style   Style
	scale   int32
}

// NewLocaleFormatter creates a formatter for the given language and currency.
func NewLocaleFormatter(tag language.Tag, unit currency.Unit, style Style) *LocaleFormatter {
	scale, _ := currency.Standard.Rounding(unit)

	return &LocaleFormatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(tag),
		style:   style,
		scale:   int32(scale),
	}
}

// NewFormatterForLocale creates a symbol-style formatter from a detected or
// configured Locale.
func NewFormatterForLocale(loc Locale) *LocaleFormatter {
	return NewLocaleFormatter(loc.Tag, loc.Unit, SymbolStyle)
}

// Format renders the amount as a localized currency string.
func (f *LocaleFormatter) Format(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(f.scale).InexactFloat64()
	value := f.unit.Amount(rounded)

	if f.style == ISOStyle {
		return f.printer.Sprint(currency.ISO(value))
	}
	return f.printer.Sprint(currency.Symbol(value))
}

// Currency returns the ISO 4217 code this formatter renders.
func (f *LocaleFormatter) Currency() string {
	return f.unit.String()
}

// Locale returns the BCP 47 tag this formatter renders for.
func (f *LocaleFormatter) Locale() string {
	return f.tag.String()
}

// Scale returns the number of decimal digits the currency carries.
func (f *LocaleFormatter) Scale() int {
	return int(f.scale)
}
