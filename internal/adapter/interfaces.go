// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the HD Notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/hd-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the HD Notes
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// VerifyOTP.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account. The server answers by emailing a
	// passcode; no token is issued at this stage.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Signin requests a fresh passcode for an existing account.
	Signin(ctx context.Context, req models.SigninRequest) error

	// VerifyOTP submits the emailed passcode. On success it stores the
	// returned bearer token via SetToken and returns the verified user.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.User, error)

	// Profile fetches the authenticated account.
	Profile(ctx context.Context) (models.User, error)

	// CreateNote stores a new note and returns it with server-assigned fields.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// ListNotes fetches all of the caller's notes, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// DeleteNote removes one of the caller's notes by id.
	DeleteNote(ctx context.Context, noteID int64) error
}
