// Package handler holds what the page handlers share: the service contract,
// their dependencies and the request site context.
package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/content"
	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/site"
	"github.com/dseza/portal/internal/theme"
	"github.com/dseza/portal/internal/web/navigation"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps)
}

// Deps are the process wide services built once at start.
type Deps struct {
	Catalog *i18n.Catalog
	Menu    []navigation.MenuItem
	Library *content.Library
}

// Site returns the request site context set by the site context middleware.
// Requests that bypassed the middleware get a Vietnamese light context without
// translations.
func Site(c *fiber.Ctx) *site.Context {
	if sc, ok := c.Locals(LocalsSite).(*site.Context); ok && sc != nil {
		return sc
	}

	log.Debug().Str("path", c.Path()).Msg("no site context on request")

	return site.New(nil, i18n.Vietnamese, theme.Light)
}

// Back returns where a click endpoint sends the visitor afterwards: the
// referring page when it is on this site, else fallback.
func Back(c *fiber.Ctx, fallback string) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return fallback
	}

	path, ok := strings.CutPrefix(ref, c.BaseURL())
	// browsers read "//host" and "/\host" as protocol relative
	if !ok || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return fallback
	}

	return path
}
