package store

import (
	"context"
	"time"

	"github.com/MKhiriev/hd-notes/models"
)

// UserRepository is the persistence contract for user accounts and their
// one-time passcode challenge state.
type UserRepository interface {
	// CreateUserWithCode inserts a new account together with its initial
	// signup passcode in a single statement.
	// Returns [ErrEmailAlreadyRegistered] if the email is taken.
	CreateUserWithCode(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its normalized email.
	// Returns [ErrNoUserWasFound] if no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its durable identifier.
	// Returns [ErrNoUserWasFound] if no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SetCode overwrites the pending passcode and its expiry for an
	// existing account. Any previously issued code is invalidated.
	// Returns [ErrNoUserWasFound] if no account matches the email.
	SetCode(ctx context.Context, email, code string, expiresAt time.Time) error

	// ConsumeCode atomically clears the pending passcode where the email,
	// the submitted code, and the expiry window all match, returning the
	// updated account. The single conditional update guarantees each code
	// is usable at most once even under concurrent verification attempts.
	// Returns [ErrNoCodeMatch] if no row satisfied the condition.
	ConsumeCode(ctx context.Context, email, code string, now time.Time) (models.User, error)

	// ClearExpiredCodes nulls every passcode whose expiry has passed and
	// reports how many rows were affected. Used by the background sweeper.
	ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// NoteRepository is the persistence contract for owner-scoped notes.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with server-assigned
	// fields (NoteID, CreatedAt).
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNotes returns all notes owned by userID, newest first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// DeleteNote removes the note identified by noteID if it is owned by
	// userID. Returns [ErrNoteNotFound] otherwise.
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
