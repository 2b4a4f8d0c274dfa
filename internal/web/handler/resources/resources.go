// Package resources handles the resources tab selector.
package resources

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/content"
	"github.com/dseza/portal/internal/web/handler"
	"github.com/dseza/portal/internal/web/view"
)

const (
	// Path is the tab select endpoint.
	Path = handler.RootPath + "resources/tab/:key"

	// Anchor is where the visitor lands after a tab click.
	Anchor = handler.RootPath + "#resources"

	section = "resources"
)

// Service is the resources tab handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the resources tab handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the resources tab handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)
}

// URL returns the select endpoint of tab id.
func URL(id string) string {
	return handler.RootPath + "resources/tab/" + id
}

// Get activates a resources tab. Unknown tabs leave the selection as is.
func (s *Service) Get(c *fiber.Ctx) error {
	tab := content.MediaType(c.Params("key"))

	page, err := view.Load(c, s.deps.Menu, s.deps.Library)
	if err != nil {
		log.Error().Err(err).Msg("failed to restore page state")
		return fiber.ErrInternalServerError
	}

	if !page.Resources.Keys().Known(tab) {
		log.Debug().Str("tab", string(tab)).Msg("ignoring unknown resources tab")
		return c.Redirect(Anchor)
	}

	page.Resources.Select(tab)
	handler.CountSelection(section, string(tab))

	if err = page.Save(c); err != nil {
		log.Error().Err(err).Msg("failed to save page state")
		return fiber.ErrInternalServerError
	}

	return c.Redirect(Anchor)
}
