package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/client"
	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	if err = run(cfg, buildInfo, tea.WithAltScreen()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns the client log file, so every return path closes it.
func run(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, opts ...tea.ProgramOption) error {
	log, closeLog := logger.NewClientLogger("phonebook-client", cfg.LogFile)
	defer closeLog()

	directory, err := adapter.NewHTTPDirectory(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("error creating directory adapter")
		return fmt.Errorf("error creating directory adapter: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app := client.NewApp(ctx, directory, cfg.Workers, buildInfo, log, opts...)
	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}

	return nil
}
