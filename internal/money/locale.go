package money

import (
	"fmt"

	locale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale bundles the language tag and currency the host environment asked for.
type Locale struct {
	Tag  language.Tag
	Unit currency.Unit
}

// String returns the locale in "en-US/USD" form for logging.
func (l Locale) String() string {
	return l.Tag.String() + "/" + l.Unit.String()
}

// Detect resolves the host locale and its region's currency. Detection never
// fails: hosts without a usable locale fall back to en-US with US dollars.
func Detect() Locale {
	name, err := locale.GetLocale()
	if err != nil || name == "" {
		return fallbackLocale()
	}

	loc, err := ParseLocale(name, "")
	if err != nil {
		return fallbackLocale()
	}
	return loc
}

// ParseLocale builds a Locale from a BCP 47 tag name and an optional ISO 4217
// currency override. An empty currencyCode derives the currency from the
// tag's region.
func ParseLocale(tagName, currencyCode string) (Locale, error) {
	tag, err := language.Parse(tagName)
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", tagName, err)
	}

	unit := unitForTag(tag)
	if currencyCode != "" {
		unit, err = currency.ParseISO(currencyCode)
		if err != nil {
			return Locale{}, fmt.Errorf("parse currency %q: %w", currencyCode, err)
		}
	}

	return Locale{Tag: tag, Unit: unit}, nil
}

func unitForTag(tag language.Tag) currency.Unit {
	if unit, conf := currency.FromTag(tag); conf != language.No {
		return unit
	}

	if region, conf := tag.Region(); conf != language.No {
		if unit, ok := currency.FromRegion(region); ok {
			return unit
		}
	}

	return currency.USD
}

func fallbackLocale() Locale {
	return Locale{Tag: language.AmericanEnglish, Unit: currency.USD}
}
