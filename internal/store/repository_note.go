package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Every statement is scoped by user_id, so one user can never read or touch
// another user's notes.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with server-assigned fields
// (NoteID, CreatedAt).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&note.NoteID, &note.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListNotes returns all notes owned by userID ordered newest first.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// DeleteNote removes the note identified by noteID if userID owns it.
// Ownership is enforced by the WHERE clause, not checked separately, so a
// foreign note and a missing note are indistinguishable: both yield
// [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// buildInsertNoteQuery builds the INSERT for a new note with a RETURNING
// clause for the server-assigned columns.
func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return sq.Insert("notes").
		Columns("user_id", "title", "content").
		Values(note.UserID, note.Title, note.Content).
		Suffix("RETURNING note_id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildListNotesQuery builds the owner-scoped SELECT ordered newest first.
func buildListNotesQuery(userID int64) (string, []any, error) {
	return sq.Select("note_id", "user_id", "title", "content", "created_at").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "note_id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildDeleteNoteQuery builds the owner-scoped DELETE.
func buildDeleteNoteQuery(userID, noteID int64) (string, []any, error) {
	return sq.Delete("notes").
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
