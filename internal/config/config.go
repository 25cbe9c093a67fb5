// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the full configuration of the phonebook server and
// client. It is populated by merging environment variables, command-line
// flags and an optional config file, then filling the remaining zero fields
// with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application version and the client log file.
	App App `envPrefix:"APP_"`

	// Storage holds the server database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the REST API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the REST API as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the client background refresh.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a .json or .toml config file.
	// Env: CONFIG, flags: -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the terminal client writes its log. Empty disables
	// client logging.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URL opens
	// PostgreSQL, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound transport settings.
type Server struct {
	// HTTPAddress is the host:port the REST API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the host:port (or base URL) of the REST API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single directory request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds settings of client background jobs.
type Workers struct {
	// RefreshInterval is how often the client reloads the whole list.
	// Zero turns the refresh off.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults used for fields no source has set.
const (
	DefaultDSN                   = "phonebook.db"
	DefaultHTTPAddress           = "localhost:3001"
	DefaultServerRequestTimeout  = 10 * time.Second
	DefaultAdapterRequestTimeout = 5 * time.Second
	DefaultLogFile               = "phonebook.log"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: DefaultLogFile},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and validates the configuration. Sources are
// applied in this order, later non-zero values winning:
//  1. environment variables
//  2. command-line flags
//  3. the config file named by either of them
//
// Fields still zero afterwards get their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
