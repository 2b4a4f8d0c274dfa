package i18n

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Language is a site language code.
type Language string

const (
	// Vietnamese is the primary site language.
	Vietnamese Language = "vi"

	// English is the secondary site language.
	English Language = "en"
)

// Supported lists the languages the site is translated to. The first entry is
// the default.
var Supported = []Language{Vietnamese, English} //nolint:gochecknoglobals

// Parse normalizes a language code and checks it against Supported.
func Parse(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))

	for _, s := range Supported {
		if s == lang {
			return lang, nil
		}
	}

	return "", errors.Wrapf(ErrUnsupportedLanguage, "language %q", code)
}

// Tag returns the x/text tag of the language.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// Matcher picks the best supported language for an Accept-Language header.
type Matcher struct {
	languages []Language
	matcher   language.Matcher
}

// NewMatcher builds a matcher over languages. The first language is the
// fallback when nothing matches.
func NewMatcher(languages ...Language) *Matcher {
	tags := make([]language.Tag, 0, len(languages))
	for _, l := range languages {
		tags = append(tags, l.Tag())
	}

	return &Matcher{
		languages: languages,
		matcher:   language.NewMatcher(tags),
	}
}

// Match returns the supported language closest to the Accept-Language value.
func (m *Matcher) Match(acceptLanguage string) Language {
	if len(m.languages) == 0 {
		return Vietnamese
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return m.languages[0]
	}

	_, index, confidence := m.matcher.Match(desired...)
	if confidence == language.No {
		return m.languages[0]
	}

	return m.languages[index]
}
