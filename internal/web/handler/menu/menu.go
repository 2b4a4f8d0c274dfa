// Package menu handles clicks on the top menu bar.
package menu

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/web/handler"
	"github.com/dseza/portal/internal/web/view"
)

const (
	// Path is the menu click endpoint.
	Path = handler.RootPath + "nav/:index"

	// section is the metrics label of menu clicks.
	section = "menu"
)

// Service is the menu click handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the menu click handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the menu click handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)
}

// URL returns the click endpoint of the item at index.
func URL(index int) string {
	return handler.RootPath + "nav/" + strconv.Itoa(index)
}

// Get applies a click on a menu item. Items with a mega menu toggle their
// panel and send the visitor back; plain items redirect to their URL.
func (s *Service) Get(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fiber.ErrNotFound
	}

	page, err := view.Load(c, s.deps.Menu, s.deps.Library)
	if err != nil {
		log.Error().Err(err).Msg("failed to restore page state")
		return fiber.ErrInternalServerError
	}

	click, err := page.Bar.Click(index)
	if err != nil {
		log.Debug().Err(err).Int("index", index).Msg("menu click rejected")
		return fiber.ErrNotFound
	}

	handler.CountSelection(section, strconv.Itoa(index))

	if click.Navigate {
		return c.Redirect(click.URL)
	}

	if err = page.Save(c); err != nil {
		log.Error().Err(err).Msg("failed to save page state")
		return fiber.ErrInternalServerError
	}

	return c.Redirect(handler.Back(c, handler.RootPath))
}
