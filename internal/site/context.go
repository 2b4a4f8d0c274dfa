// Package site provides the per-request rendering context: visitor language,
// theme and the translator bound to that language.
//
// The services behind a Context (translation catalog, defaults) are created
// once at start and only read afterwards. A Context is built per request and
// passed explicitly to views and templates.
package site

import (
	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/theme"
)

// Context carries what a view needs to know about the visitor.
type Context struct {
	Language   i18n.Language
	Theme      theme.Theme
	Translator i18n.Translator
	Title      string
}

// New builds a context for lang and th from catalog.
func New(catalog *i18n.Catalog, lang i18n.Language, th theme.Theme) *Context {
	c := &Context{
		Language: lang,
		Theme:    th,
	}

	if catalog != nil {
		c.Translator = catalog.Translator(lang)
	}

	return c
}

// T translates key in the context language.
func (c *Context) T(key string) string {
	return c.Translator.T(key)
}

// Lang returns the language code for the html lang attribute.
func (c *Context) Lang() string {
	return string(c.Language)
}

// IsLanguage reports whether code is the context language.
func (c *Context) IsLanguage(code string) bool {
	return string(c.Language) == code
}

// Languages lists the language codes offered by the language switch.
func (c *Context) Languages() []string {
	out := make([]string, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		out = append(out, string(l))
	}

	return out
}

// Pick returns the light or dark style class for the context theme.
func (c *Context) Pick(light, dark string) string {
	return c.Theme.Pick(light, dark)
}
