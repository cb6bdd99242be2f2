package models

import "time"

// Note is a single text note owned by a user.
// Notes are only ever read and mutated through owner-scoped queries.
type Note struct {
	// NoteID is the unique identifier of the note in the database.
	NoteID int64 `json:"id"`

	// UserID is the owner of this note.
	UserID int64 `json:"user_id"`

	// Title is the short display title of the note.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
