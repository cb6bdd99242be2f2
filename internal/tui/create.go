package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type createModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateModel() createModel {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "title"
	inputs[0].Width = 50
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "content"
	inputs[1].Width = 50

	return createModel{inputs: inputs}
}

func (m createModel) View() string {
	var b strings.Builder
	b.WriteString("Title    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Content  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return renderPage("NEW NOTE", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}
