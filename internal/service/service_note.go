package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/store"
	"github.com/MKhiriev/hd-notes/internal/validators"
	"github.com/MKhiriev/hd-notes/models"
)

// noteService is the concrete implementation of NoteService. Ownership is
// enforced in the store layer, so every method simply threads the calling
// user's id through.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID.
//
// Returns the persisted note (with server-assigned NoteID and CreatedAt) or:
//   - ErrInvalidDataProvided if title or content is blank.
//   - A wrapped storage error if persistence fails.
func (n *noteService) CreateNote(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note := models.Note{
		UserID:  userID,
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// ListNotes returns the caller's notes, newest first. An account without
// notes gets an empty list, not an error.
func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("note listing ended with error")
		return nil, fmt.Errorf("note listing ended with error: %w", err)
	}

	return notes, nil
}

// DeleteNote removes one of the caller's notes.
//
// Returns a wrapped store.ErrNoteNotFound when the note does not exist or
// belongs to someone else.
func (n *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Int64("userID", userID).Int64("noteID", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
