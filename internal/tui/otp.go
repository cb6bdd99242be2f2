package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// otpModel is the passcode entry screen shown after the server has
// emailed a 6-digit code.
type otpModel struct {
	email      string
	input      textinput.Model
	submitting bool
}

func newOTPModel(email string) otpModel {
	codeInput := textinput.New()
	codeInput.Placeholder = "000000"
	codeInput.CharLimit = 6
	codeInput.Width = 10
	codeInput.Focus()

	return otpModel{email: email, input: codeInput}
}

func (m otpModel) View() string {
	var b strings.Builder
	b.WriteString("A 6-digit code was sent to ")
	b.WriteString(m.email)
	b.WriteString("\nThe code is valid for 5 minutes.\n\n")
	b.WriteString("Code │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Verifying...]\n")
	} else {
		b.WriteString("\n[Verify]\n")
	}

	return renderPage("VERIFY EMAIL", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: verify")
}
