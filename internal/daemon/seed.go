package daemon

import (
	"gorm.io/gorm"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/db/open"
	dbseed "github.com/dseza/portal/internal/db/seed"
)

// seed fills empty content tables from the configured seed file, or the
// embedded one.
func seed(cfg *config.Config, db *gorm.DB) (dbseed.Result, error) {
	var (
		file *dbseed.File
		err  error
	)

	if cfg.Site.SeedFile != "" {
		file, err = dbseed.LoadFile(cfg.Site.SeedFile)
	} else {
		file, err = dbseed.Default()
	}

	if err != nil {
		return dbseed.Result{}, err
	}

	return dbseed.Apply(db, file)
}

// Seed opens the configured database and seeds it without starting the web
// service.
func Seed(cfg *config.Config) (dbseed.Result, error) {
	if cfg == nil {
		return dbseed.Result{}, ErrNilConfig
	}

	db, err := open.DB(&cfg.DB, cfg.DevMode)
	if err != nil {
		return dbseed.Result{}, err
	}

	return seed(cfg, db)
}
