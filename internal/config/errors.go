package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be sqlite, mysql or postgres")

	// ErrUnknownSessionStorage error if config session.storage is not supported.
	ErrUnknownSessionStorage = errors.New("toml config session.storage must be memory, mysql or postgres")

	// ErrSessionStorageEngineMismatch error if a database session storage differs from db.gormEngine.
	ErrSessionStorageEngineMismatch = errors.New("toml config session.storage must match db.gormEngine")
)
