package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a config holding only the flags that were set.
//
// Flags:
//
//	-a         server listen address host:port
//	-d         database DSN
//	-request-timeout   server request timeout (e.g. 10s)
//	-server    REST API address used by the client
//	-adapter-timeout   client request timeout (e.g. 5s)
//	-refresh-interval  client background refresh period, 0 disables it
//	-version   application version
//	-log-file  client log file
//	-c/-config config file path (.json or .toml)
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var refreshInterval time.Duration
	var version string
	var logFile string
	var configPath string

	fs := flag.NewFlagSet("phonebook", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Server listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (SQLite path or postgres:// URL)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g. 10s)")
	fs.StringVar(&adapterAddress, "server", "", "Phonebook API address used by the client")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g. 5s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Client refresh interval, 0 disables it")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&configPath, "c", "", "Config file path (.json or .toml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses s in host:port form. The host may be empty, "localhost" or an
// IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
