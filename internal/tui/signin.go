package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type signinModel struct {
	input      textinput.Model
	submitting bool
}

func newSigninModel() signinModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "jane@example.com"
	emailInput.Width = 40
	emailInput.Focus()

	return signinModel{input: emailInput}
}

func (m signinModel) View() string {
	var b strings.Builder
	b.WriteString("Email │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Sending code...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}
