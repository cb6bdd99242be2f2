package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrInvalidDateOfBirth = errors.New("date of birth must be in YYYY-MM-DD format")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidOTP         = errors.New("passcode must be exactly 6 digits")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyContent       = errors.New("content is required")
)
