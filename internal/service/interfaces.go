package service

import (
	"context"

	"github.com/MKhiriev/hd-notes/models"
)

type AuthService interface {
	// Signup creates a new account and emails its first one-time passcode.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Signin issues a fresh one-time passcode for an existing account,
	// replacing any code issued earlier.
	Signin(ctx context.Context, req models.SigninRequest) error

	// VerifyOTP checks the submitted passcode and, on success, returns a
	// session token together with the verified account.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.Token, models.User, error)

	// Profile returns the account behind an authenticated session.
	Profile(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
