package config

import (
	"time"

	"github.com/dseza/portal/internal/logger"
)

// Session settings.
type Session struct {
	Storage    string        // memory, mysql or postgres
	Table      string        // table name for database backed storage
	Expiration time.Duration // idle time after which selection state is dropped
	CookieName string
	Secure     bool // send cookies over https only
}

// Site holds the presentation defaults.
type Site struct {
	DefaultLanguage string // vi or en
	DefaultTheme    string // light or dark
	LocalesDir      string // load locale files from disk instead of the embedded ones
	MenuFile        string // load the menu definition from disk instead of the embedded one
	SeedFile        string // seed an empty database from this file instead of the embedded one
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Site      Site
	Session   Session
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool   // enable static file browsing (for development purposes only)
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}
