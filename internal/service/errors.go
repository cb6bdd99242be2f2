package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrOTPInvalidOrExpired covers every failed verification: wrong code,
	// expired code, already consumed code, unknown email. Callers get one
	// indistinct answer on purpose.
	ErrOTPInvalidOrExpired = errors.New("passcode is invalid or expired")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
