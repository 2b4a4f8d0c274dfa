// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/theme"
)

// EnvConfigJSON names the environment variable holding a JSON config override.
const EnvConfigJSON = "DSEZA_PORTAL_CONFIG_JSON"

// Session storage backends.
const (
	SessionStorageMemory   = "memory"
	SessionStorageMySQL    = "mysql"
	SessionStoragePostgres = "postgres"
)

const (
	defaultShutDownTime      = 5
	defaultSessionExpiration = 30 * time.Minute
	defaultSessionTable      = "sessions"
	defaultSessionCookie     = "portal_session"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the portal can not start without and fills in
// defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if err := validateSite(&c.Site); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineSQLite
	}

	switch c.DB.GormEngine {
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	return errors.Wrap(validateSession(&c.Session, c.DB.GormEngine), invalidErrMessage)
}

func validateSite(s *Site) error {
	if s.DefaultLanguage == "" {
		s.DefaultLanguage = string(i18n.Supported[0])
	}

	lang, err := i18n.Parse(s.DefaultLanguage)
	if err != nil {
		return err //nolint: wrapcheck
	}

	s.DefaultLanguage = string(lang)

	if s.DefaultTheme == "" {
		s.DefaultTheme = string(theme.Light)
	}

	th, err := theme.Parse(s.DefaultTheme)
	if err != nil {
		return err //nolint: wrapcheck
	}

	s.DefaultTheme = string(th)

	return nil
}

func validateSession(s *Session, engine string) error {
	if s.Storage == "" {
		s.Storage = SessionStorageMemory
	}

	if s.Expiration == 0 {
		s.Expiration = defaultSessionExpiration
	}

	if s.Table == "" {
		s.Table = defaultSessionTable
	}

	if s.CookieName == "" {
		s.CookieName = defaultSessionCookie
	}

	switch s.Storage {
	case SessionStorageMemory:
		return nil
	case SessionStorageMySQL, SessionStoragePostgres:
		if s.Storage != engine {
			return ErrSessionStorageEngineMismatch
		}

		return nil
	default:
		return ErrUnknownSessionStorage
	}
}
