// Package web wires the portal's fiber application: templates, static files,
// middleware and page handlers.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/i18n"
	adapter "github.com/dseza/portal/internal/logger/adapter/fiber"
	"github.com/dseza/portal/internal/theme"
	"github.com/dseza/portal/internal/web/handler"
	"github.com/dseza/portal/internal/web/handler/home"
	"github.com/dseza/portal/internal/web/handler/menu"
	"github.com/dseza/portal/internal/web/handler/news"
	"github.com/dseza/portal/internal/web/handler/preferences"
	"github.com/dseza/portal/internal/web/handler/resources"
	"github.com/dseza/portal/internal/web/middleware/sitectx"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the configured port.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	addr := fmt.Sprintf(":%d", s.cfg.Webserver.Port)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and shuts the server down
// gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether checkalive answers healthy.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// NewEngine returns the template engine over the embedded templates, or over
// the source tree in dev mode.
func NewEngine(devMode bool) *html.Engine {
	templateEngine := html.NewFileSystem(templatesFS(), ".gohtml")

	// in dev mode, use local filesystem for templates
	if devMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("navURL", menu.URL)
	templateEngine.AddFunc("newsURL", news.URL)
	templateEngine.AddFunc("resourceURL", resources.URL)
	templateEngine.AddFunc("langURL", preferences.LanguageURL)
	templateEngine.AddFunc("themeURL", func(th theme.Theme) string {
		return preferences.ThemeURL(string(th))
	})
	templateEngine.AddFunc("upper", strings.ToUpper)

	return templateEngine
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, deps *handler.Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil {
		panic("deps cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Log.AppName,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          NewEngine(cfg.DevMode),
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Use(adapter.New(adapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.Alive() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(sitectx.New(sitectx.Config{
		Catalog:         deps.Catalog,
		DefaultLanguage: i18n.Language(cfg.Site.DefaultLanguage),
		DefaultTheme:    theme.Theme(cfg.Site.DefaultTheme),
		Title:           cfg.Title,
	}))

	// init handlers (they register their own routes)
	home.Handler.Init(app, cfg, deps)
	menu.Handler.Init(app, cfg, deps)
	news.Handler.Init(app, cfg, deps)
	resources.Handler.Init(app, cfg, deps)
	preferences.Handler.Init(app, cfg, deps)

	return service
}
