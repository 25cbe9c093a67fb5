package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the client transport settings.
type ClientAdapter struct {
	// HTTPAddress is the REST API address.
	HTTPAddress string
	// RequestTimeout bounds every directory request.
	RequestTimeout time.Duration
}

// ClientWorkers holds the client background job settings.
type ClientWorkers struct {
	// RefreshInterval is the period of the background reload, 0 when off.
	RefreshInterval time.Duration
}

// ClientConfig is the part of [StructuredConfig] the terminal client uses.
type ClientConfig struct {
	// LogFile is the client log destination. Empty disables logging.
	LogFile string
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetServerConfig loads the configuration via [GetStructuredConfig] and
// checks that the REST API can start with it.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}

// GetClientConfig loads the configuration via [GetStructuredConfig] and
// returns the validated client view of it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		LogFile: cfg.App.LogFile,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
