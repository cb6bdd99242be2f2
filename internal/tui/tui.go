// Package tui implements the interactive terminal client. It is a thin
// Bubble Tea front end over [adapter.ServerAdapter]: every screen action
// dispatches an async command against the server and feeds the result back
// into the model as a message.
package tui

import (
	"context"

	"github.com/MKhiriev/hd-notes/internal/adapter"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	return &TUI{server: server, logger: log}, nil
}

// Run drives the whole client session: the sign-in flow followed by the
// notes screens, inside one program. It returns [ErrUserQuit] when the
// user leaves on purpose.
func (t *TUI) Run(ctx context.Context, buildInfo models.AppBuildInfo) error {
	model := newAppModel(ctx, t.server, buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
