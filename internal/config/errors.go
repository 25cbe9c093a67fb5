package config

import "errors"

var (
	// ErrUnsupportedConfigFile is returned for a config file that is neither
	// .json nor .toml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
	// ErrInvalidServerConfigs indicates an empty listen address or DSN, or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing API address or a
	// non-positive client request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a negative refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
