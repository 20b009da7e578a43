package money

import (
	"strings"
	"testing"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestLocaleFormatterSymbolStyle(t *testing.T) {
	f := NewLocaleFormatter(language.AmericanEnglish, currency.USD, SymbolStyle)

	got := f.Format(24.98)
	if !strings.Contains(got, "24.98") {
		t.Errorf("Format(24.98) = %q, want the amount digits present", got)
	}
	if !strings.Contains(got, "$") {
		t.Errorf("Format(24.98) = %q, want the currency symbol present", got)
	}
	if strings.Contains(got, "USD") {
		t.Errorf("Format(24.98) = %q, symbol style must not spell the ISO code", got)
	}
}

func TestLocaleFormatterISOStyle(t *testing.T) {
	f := NewLocaleFormatter(language.AmericanEnglish, currency.USD, ISOStyle)

	got := f.Format(24.98)
	if !strings.Contains(got, "USD") {
		t.Errorf("Format(24.98) = %q, want the ISO code present", got)
	}
	if !strings.Contains(got, "24.98") {
		t.Errorf("Format(24.98) = %q, want the amount digits present", got)
	}
}

func TestLocaleFormatterRoundsToCurrencyScale(t *testing.T) {
	tests := []struct {
		name    string
		unit    currency.Unit
		amount  float64
		want    string
		exclude string
	}{
		{
			name:    "dollar cents rounded half up",
			unit:    currency.USD,
			amount:  3.333,
			want:    "3.33",
			exclude: "3.333",
		},
		{
			name:    "dollar third decimal dropped",
			unit:    currency.USD,
			amount:  12.995,
			want:    "13",
			exclude: "12.995",
		},
		{
			name:    "yen has no minor unit",
			unit:    currency.JPY,
			amount:  123.6,
			want:    "124",
			exclude: ".6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLocaleFormatter(language.AmericanEnglish, tt.unit, ISOStyle)

			got := f.Format(tt.amount)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Format(%v) = %q, want %q present", tt.amount, got, tt.want)
			}
			if strings.Contains(got, tt.exclude) {
				t.Errorf("Format(%v) = %q, want %q rounded away", tt.amount, got, tt.exclude)
			}
		})
	}
}

func TestLocaleFormatterStableOutput(t *testing.T) {
	f := NewLocaleFormatter(language.AmericanEnglish, currency.USD, SymbolStyle)

	first := f.Format(15.0)
	for i := 0; i < 5; i++ {
		if got := f.Format(15.0); got != first {
			t.Fatalf("Format(15.0) changed between calls: %q then %q", first, got)
		}
	}

	// Sub-scale noise must not change the rendering.
	if got := f.Format(15.0001); got != first {
		t.Errorf("Format(15.0001) = %q, want %q after scale rounding", got, first)
	}
}

func TestLocaleFormatterAccessors(t *testing.T) {
	f := NewLocaleFormatter(language.AmericanEnglish, currency.USD, SymbolStyle)

	if got := f.Currency(); got != "USD" {
		t.Errorf("Currency() = %q, want %q", got, "USD")
	}
	if got := f.Locale(); got != "en-US" {
		t.Errorf("Locale() = %q, want %q", got, "en-US")
	}
	if got := f.Scale(); got != 2 {
		t.Errorf("Scale() = %d, want 2", got)
	}

	yen := NewLocaleFormatter(language.Japanese, currency.JPY, SymbolStyle)
	if got := yen.Scale(); got != 0 {
		t.Errorf("Scale() for JPY = %d, want 0", got)
	}
}

func TestFormatterFunc(t *testing.T) {
	var got float64
	f := FormatterFunc(func(amount float64) string {
		got = amount
		return "formatted"
	})

	if s := f.Format(7.5); s != "formatted" {
		t.Errorf("Format(7.5) = %q, want %q", s, "formatted")
	}
	if got != 7.5 {
		t.Errorf("wrapped function received %v, want 7.5", got)
	}
}
