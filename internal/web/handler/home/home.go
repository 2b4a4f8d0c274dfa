// Package home renders the portal start page.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/web/handler"
	"github.com/dseza/portal/internal/web/view"
)

const (
	// Path is the path to the home page.
	Path = handler.RootPath

	// TemplateName is the name of the home template.
	TemplateName = "home/home"
)

// Service is the home handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the home handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the home handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)
}

// Get renders the menu bar, the news section and the resources section for
// the visitor's current selection.
func (s *Service) Get(c *fiber.Ctx) error {
	page, err := view.Load(c, s.deps.Menu, s.deps.Library)
	if err != nil {
		log.Error().Err(err).Msg("failed to restore page state")
		return fiber.ErrInternalServerError
	}

	sc := handler.Site(c)

	return c.Render(TemplateName, fiber.Map{
		"Site": sc,
		"Page": page.Home(sc),
	}, handler.BaseLayout)
}
