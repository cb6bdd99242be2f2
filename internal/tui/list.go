package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/hd-notes/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	status  string
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	} else if len(m.notes) == 0 {
		b.WriteString("No notes yet. Press n to create one.\n")
	} else {
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %s\n",
				cursor,
				note.CreatedAt.Format("2006-01-02 15:04"),
				fitText(note.Title, 40)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("MY NOTES",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ d: delete │ c: copy │ r: refresh │ l: log out │ q: quit")
}
