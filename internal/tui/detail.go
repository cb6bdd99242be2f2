package tui

import (
	"strings"

	"github.com/MKhiriev/hd-notes/models"
)

type detailModel struct {
	note   models.Note
	status string
}

func (m detailModel) View() string {
	var b strings.Builder
	b.WriteString(m.note.Title)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("created " + m.note.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")
	b.WriteString(m.note.Content)

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("NOTE", strings.TrimRight(b.String(), "\n"), "c: copy │ d: delete │ esc: back")
}
