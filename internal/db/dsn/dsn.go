// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dseza/portal/internal/config"
)

// MySQL builds the go-sql-driver Data Source Name from the configuration.
func MySQL(dbCfg *config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Name,
	)

	if dbCfg.Extras != "" {
		out += "?" + dbCfg.Extras
	}

	return out
}

// Postgres builds a postgres connection URI from the configuration.
func Postgres(dbCfg *config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbCfg.User, dbCfg.Password),
		Host:     fmt.Sprintf("%s:%d", dbCfg.Host, dbCfg.Port),
		Path:     "/" + dbCfg.Name,
		RawQuery: dbCfg.Extras,
	}

	return u.String()
}

// SQLite returns the database file path, with extras appended as query
// parameters.
func SQLite(dbCfg *config.DB) string {
	if dbCfg.Extras == "" {
		return dbCfg.Name
	}

	sep := "?"
	if strings.Contains(dbCfg.Name, "?") {
		sep = "&"
	}

	return dbCfg.Name + sep + dbCfg.Extras
}
