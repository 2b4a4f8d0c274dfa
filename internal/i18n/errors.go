package i18n

import "errors"

var (
	// ErrUnsupportedLanguage is returned when a language tag is not served by the site.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrMissingTranslation is returned by Catalog.Lookup when a key has no text.
	ErrMissingTranslation = errors.New("translation missing")

	// ErrNoLocales is returned when a locale source contains no locale files.
	ErrNoLocales = errors.New("no locale files found")
)
