// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// one-time passcode generation, and other common operations.
package utils

import (
	"context"
	"errors"

	"github.com/MKhiriev/hd-notes/models"
)

var (
	// ErrNoUserIDInContext is returned when the context carries no user
	// identifier under UserIDCtxKey.
	ErrNoUserIDInContext = errors.New("no user id in context")

	// ErrNoUserInContext is returned when the context carries no resolved
	// user under UserCtxKey.
	ErrNoUserInContext = errors.New("no user in context")
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// UserCtxKey is the key used to store the authenticated user's resolved
// profile in the context. The auth middleware writes it after confirming the
// token subject still exists.
var UserCtxKey = contextKey("user")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns ErrNoUserIDInContext when the value is missing or has an
// unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok {
		return 0, ErrNoUserIDInContext
	}
	return userID, nil
}

// GetUserFromContext retrieves the resolved user from the context.
//
// Returns ErrNoUserInContext when the value is missing or has an
// unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, error) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}
