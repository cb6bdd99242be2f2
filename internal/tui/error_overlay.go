package tui

import "fmt"

// errorOverlayModel is a modal window showing a single error message until
// the user dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		fmt.Sprintf("Error\n\n%s\n\nenter / esc to close", m.message),
	)
}
