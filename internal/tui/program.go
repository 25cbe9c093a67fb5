// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/phonebook"
	"github.com/MKhiriev/go-phonebook/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Program runs the phonebook screen and owns its notification timers.
type Program struct {
	program *tea.Program
	timers  *phonebook.Timers
}

func NewProgram(ctx context.Context, dir Directory, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *Program {
	p := &Program{}
	p.timers = phonebook.NewTimers(func(e phonebook.Expiry) {
		p.program.Send(expiryMsg{expiry: e})
	})

	m := newModel(ctx, dir, p.timers, buildInfo, logger)
	p.program = tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	return p
}

// Run blocks until the user quits or ctx is cancelled.
func (p *Program) Run() error {
	defer p.timers.Stop()

	_, err := p.program.Run()
	return err
}

// Refresh asks the running program to reload the phonebook. It is safe to
// call from any goroutine.
func (p *Program) Refresh() {
	p.program.Send(RefreshMsg{})
}

// Quit stops the running program.
func (p *Program) Quit() {
	p.program.Quit()
}
