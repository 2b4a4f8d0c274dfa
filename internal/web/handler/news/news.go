// Package news handles the news category filter.
package news

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/web/handler"
	"github.com/dseza/portal/internal/web/view"
)

const (
	// Path is the category select endpoint.
	Path = handler.RootPath + "news/category/:key"

	// Anchor is where the visitor lands after a category click.
	Anchor = handler.RootPath + "#news"

	section = "news"
)

// Service is the news category handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the news category handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the news category handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)
}

// URL returns the select endpoint of category id.
func URL(id string) string {
	return handler.RootPath + "news/category/" + id
}

// Get activates a news category. Unknown categories leave the selection as is.
func (s *Service) Get(c *fiber.Ctx) error {
	key := c.Params("key")

	page, err := view.Load(c, s.deps.Menu, s.deps.Library)
	if err != nil {
		log.Error().Err(err).Msg("failed to restore page state")
		return fiber.ErrInternalServerError
	}

	if !page.News.Keys().Known(key) {
		log.Debug().Str("category", key).Msg("ignoring unknown news category")
		return c.Redirect(Anchor)
	}

	page.News.Select(key)
	handler.CountSelection(section, key)

	if err = page.Save(c); err != nil {
		log.Error().Err(err).Msg("failed to save page state")
		return fiber.ErrInternalServerError
	}

	return c.Redirect(Anchor)
}
