package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type signupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newSignupModel() signupModel {
	inputs := make([]textinput.Model, 3)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Jane Doe"
	inputs[0].Width = 40
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "1990-04-12"
	inputs[1].CharLimit = 10
	inputs[1].Width = 40

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "jane@example.com"
	inputs[2].Width = 40

	return signupModel{inputs: inputs}
}

func (m signupModel) View() string {
	var b strings.Builder
	b.WriteString("Field          │ Value\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	b.WriteString("Name           │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Date of birth  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Email          │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Sending code...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
