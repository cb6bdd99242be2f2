package models

import "time"

// User represents a registered identity keyed by email.
// OTP fields are server-internal challenge state and must never be
// exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// DateOfBirth is the profile date of birth, immutable after signup.
	DateOfBirth time.Time `json:"dob"`

	// Email is the unique, lower-cased user email.
	// It is the natural key of the account and the OTP delivery address.
	Email string `json:"email"`

	// OTPCode is the pending one-time passcode, if a challenge is
	// outstanding. Never serialized.
	OTPCode *string `json:"-"`

	// OTPExpiresAt is the expiry of OTPCode. Set and cleared together
	// with OTPCode, never independently.
	OTPExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public view of the user: identity attributes only,
// with the OTP challenge fields dropped.
func (u User) Profile() User {
	return User{
		UserID:      u.UserID,
		Name:        u.Name,
		DateOfBirth: u.DateOfBirth,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
	}
}
