// Package preferences handles the language and theme switches.
package preferences

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/theme"
	"github.com/dseza/portal/internal/web/handler"
)

const (
	// LanguagePath is the language switch endpoint.
	LanguagePath = handler.RootPath + "lang/:tag"

	// ThemePath is the theme switch endpoint.
	ThemePath = handler.RootPath + "theme/:tag"

	cookieMaxAge = 365 * 24 * time.Hour
)

// Service is the preferences handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the preferences handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the preferences handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(LanguagePath, s.Language)
	app.Get(ThemePath, s.Theme)
}

// LanguageURL returns the switch endpoint of lang.
func LanguageURL(lang string) string {
	return handler.RootPath + "lang/" + lang
}

// ThemeURL returns the switch endpoint of th.
func ThemeURL(th string) string {
	return handler.RootPath + "theme/" + th
}

// Language stores the visitor language. Unsupported tags are ignored.
func (s *Service) Language(c *fiber.Ctx) error {
	lang, err := i18n.Parse(c.Params("tag"))
	if err != nil {
		log.Debug().Err(err).Str("tag", c.Params("tag")).Msg("ignoring language switch")
		return c.Redirect(handler.Back(c, handler.RootPath))
	}

	s.setCookie(c, handler.CookieLanguage, string(lang))

	return c.Redirect(handler.Back(c, handler.RootPath))
}

// Theme stores the visitor theme. Unknown tags are ignored.
func (s *Service) Theme(c *fiber.Ctx) error {
	th, err := theme.Parse(c.Params("tag"))
	if err != nil {
		log.Debug().Err(err).Str("tag", c.Params("tag")).Msg("ignoring theme switch")
		return c.Redirect(handler.Back(c, handler.RootPath))
	}

	s.setCookie(c, handler.CookieTheme, string(th))

	return c.Redirect(handler.Back(c, handler.RootPath))
}

func (s *Service) setCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     handler.RootPath,
		Expires:  time.Now().Add(cookieMaxAge),
		HTTPOnly: true,
		Secure:   s.cfg.Session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
