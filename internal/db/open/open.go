// Package open connects gorm to the configured database engine.
package open

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/db/dsn"
	"github.com/dseza/portal/internal/db/models"
)

// ErrNilConfig is returned when no database configuration is given.
var ErrNilConfig = errors.New("database config is nil")

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.DB) (gorm.Dialector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch cfg.GormEngine {
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.SQLite(cfg)), nil
	case config.EngineMySQL:
		return mysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(cfg)), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.GormEngine)
	}
}

// DB opens the database and migrates the content tables.
func DB(cfg *config.DB, devMode bool) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.GormEngine == config.EngineSQLite || cfg.GormEngine == "" {
		if err = ensureDir(cfg.Name); err != nil {
			return nil, err
		}
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if devMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the content tables.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(models.All()...), "failed to migrate database")
}

// ensureDir creates the parent directory of a sqlite database file.
func ensureDir(name string) error {
	if name == "" || name == ":memory:" || strings.HasPrefix(name, "file:") {
		return nil
	}

	dir := filepath.Dir(name)
	if dir == "." {
		return nil
	}

	return errors.Wrap(os.MkdirAll(dir, 0o750), "failed to create database directory") //nolint:mnd
}
