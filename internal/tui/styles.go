package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles. Every screen renders through these so the whole
// client keeps one visual language.
var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)

	// overlayBoxStyle frames modal windows drawn above the current screen.
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)
