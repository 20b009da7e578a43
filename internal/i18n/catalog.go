// Package i18n resolves user-facing strings for the configured locale.
package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Catalog resolves message IDs to display strings for one language, falling
// back to English when a translation is missing.
type Catalog struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// NewCatalog builds the message catalog for the given language.
func NewCatalog(tag language.Tag) *Catalog {
	bundle := goi18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English, englishMessages...)
	bundle.MustAddMessages(language.Spanish, spanishMessages...)

	return &Catalog{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}
}

// T resolves a message ID to its localized text. Unknown IDs come back
// verbatim so a missed registration shows up on screen instead of crashing.
func (c *Catalog) T(id string) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Count resolves a pluralized message ID for the given count.
func (c *Catalog) Count(id string, n int) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]interface{}{"Count": n},
		PluralCount:  n,
	})
	if err != nil {
		return id
	}
	return msg
}

// Tag returns the language this catalog resolves for.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}
