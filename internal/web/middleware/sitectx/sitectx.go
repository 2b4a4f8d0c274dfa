package sitectx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/site"
	"github.com/dseza/portal/internal/theme"
	"github.com/dseza/portal/internal/web/handler"
)

// Config configures the middleware.
type Config struct {
	Catalog         *i18n.Catalog
	DefaultLanguage i18n.Language
	DefaultTheme    theme.Theme
	Title           string
}

// New returns the site context middleware.
func New(cfg Config) fiber.Handler {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = i18n.Supported[0]
	}

	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = theme.Light
	}

	// default language first, so it wins when Accept-Language matches nothing
	languages := []i18n.Language{cfg.DefaultLanguage}
	for _, l := range i18n.Supported {
		if l != cfg.DefaultLanguage {
			languages = append(languages, l)
		}
	}

	matcher := i18n.NewMatcher(languages...)

	return func(c *fiber.Ctx) error {
		sc := site.New(cfg.Catalog, Language(c, matcher), Theme(c, cfg.DefaultTheme))
		sc.Title = cfg.Title

		c.Locals(handler.LocalsSite, sc)

		return c.Next()
	}
}

// Language picks the visitor language.
func Language(c *fiber.Ctx, matcher *i18n.Matcher) i18n.Language {
	if lang, err := i18n.Parse(c.Cookies(handler.CookieLanguage)); err == nil {
		return lang
	}

	return matcher.Match(c.Get(fiber.HeaderAcceptLanguage))
}

// Theme picks the visitor theme.
func Theme(c *fiber.Ctx, fallback theme.Theme) theme.Theme {
	if th, err := theme.Parse(c.Cookies(handler.CookieTheme)); err == nil {
		return th
	}

	return fallback
}
