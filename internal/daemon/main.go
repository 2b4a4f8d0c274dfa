// Package daemon assembles the portal services and runs the web server.
package daemon

import (
	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dseza/portal/internal/config"
	dbcontent "github.com/dseza/portal/internal/db/controller/content"
	"github.com/dseza/portal/internal/db/dsn"
	"github.com/dseza/portal/internal/db/open"
	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/web"
	"github.com/dseza/portal/internal/web/handler"
	"github.com/dseza/portal/internal/web/navigation"
	"github.com/dseza/portal/internal/web/session"
)

// ErrNilConfig is returned when the daemon is built without configuration.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start runs the web service until a termination signal arrives.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start()
}

// New opens the database, seeds it when empty, loads the translation
// catalog, the menu and the content library, and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	db, err := open.DB(&cfg.DB, cfg.DevMode)
	if err != nil {
		return nil, err
	}

	if _, err = seed(cfg, db); err != nil {
		return nil, err
	}

	deps, err := LoadDeps(cfg, db)
	if err != nil {
		return nil, err
	}

	sessionStorage, err := newSessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	session.Init(sessionStorage, session.Config{
		Expiration: cfg.Session.Expiration,
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
	})

	return &Daemon{
		webService: web.New(cfg, deps),
	}, nil
}

// LoadDeps builds the read-only services the handlers share.
func LoadDeps(cfg *config.Config, db *gorm.DB) (*handler.Deps, error) {
	fallback := i18n.Language(cfg.Site.DefaultLanguage)

	var (
		catalog *i18n.Catalog
		err     error
	)

	if cfg.Site.LocalesDir != "" {
		catalog, err = i18n.LoadDir(cfg.Site.LocalesDir, fallback)
	} else {
		catalog, err = i18n.LoadEmbedded(fallback)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to load translations")
	}

	var menu []navigation.MenuItem
	if cfg.Site.MenuFile != "" {
		menu, err = navigation.LoadFile(cfg.Site.MenuFile)
	} else {
		menu, err = navigation.LoadDefault()
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu")
	}

	library, err := dbcontent.Library(db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}

	log.Info().
		Strs("languages", languageCodes(catalog.Languages())).
		Int("menuItems", len(menu)).
		Int("news", len(library.News)).
		Int("resources", len(library.Resources)).
		Msg("site data loaded")

	return &handler.Deps{
		Catalog: catalog,
		Menu:    menu,
		Library: library,
	}, nil
}

// newSessionStorage returns the session backend. Memory storage is nil, the
// session middleware then keeps sessions in process.
func newSessionStorage(cfg *config.Config) (fiber.Storage, error) {
	switch cfg.Session.Storage {
	case config.SessionStorageMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(&cfg.DB),
			Table:         cfg.Session.Table,
		}), nil
	case config.SessionStoragePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(&cfg.DB),
			Table:         cfg.Session.Table,
		}), nil
	case config.SessionStorageMemory, "":
		return nil, nil //nolint:nilnil // memory storage is the middleware default
	default:
		return nil, errors.Wrap(config.ErrUnknownSessionStorage, cfg.Session.Storage)
	}
}

func languageCodes(langs []i18n.Language) []string {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		out = append(out, string(l))
	}

	return out
}
