// Package locale wraps go-i18n message bundles for page-title and UI-string
// localization. Message files are TOML, matching the configuration format.
package locale

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle creates a message bundle with English as the fallback language
// and TOML registered as the message file format.
func NewBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Load reads a TOML message file into the bundle.
func Load(bundle *i18n.Bundle, path string) error {
	if _, err := bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("locale: load %s: %w", path, err)
	}
	return nil
}

// LoadBytes parses raw TOML messages into the bundle. name must carry the
// language tag and format, e.g. "de.toml".
func LoadBytes(bundle *i18n.Bundle, data []byte, name string) error {
	if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("locale: parse %s: %w", name, err)
	}
	return nil
}

// Localizer builds a localizer preferring the given locales in order, with
// the bundle's fallback language last.
func Localizer(bundle *i18n.Bundle, locales ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, locales...)
}

// PageTitle resolves a page-title message ID. Unknown IDs fall back to the
// ID itself so an untranslated page still gets a readable title.
func PageTitle(l *i18n.Localizer, messageID string, data map[string]any) string {
	title, _ := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	// A fallback-language hit reports an error alongside a usable
	// translation, so only an empty result means "not found anywhere".
	if title == "" {
		return messageID
	}
	return title
}
