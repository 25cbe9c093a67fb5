package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/tui"
	"github.com/MKhiriev/go-phonebook/internal/workers"
	"github.com/MKhiriev/go-phonebook/models"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	program *tui.Program
	workers *workers.Workers

	logger *logger.Logger
}

// NewApp builds the phonebook screen for dir and a refresh worker that
// reloads it every cfg.RefreshInterval.
func NewApp(ctx context.Context, dir tui.Directory, cfg config.ClientWorkers, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *App {
	program := tui.NewProgram(ctx, dir, buildInfo, logger, opts...)

	return &App{
		program: program,
		workers: workers.NewWorkers(
			workers.NewRefreshWorker(cfg.RefreshInterval, program.Refresh, logger),
		),
		logger: logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is a
// normal exit.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	err := a.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("run phonebook ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
