package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/hd-notes/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldName targets the display name of an account.
	FieldName = "name"

	// FieldDateOfBirth targets the date of birth in YYYY-MM-DD form.
	FieldDateOfBirth = "dob"

	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldOTP targets the 6-digit one-time passcode.
	FieldOTP = "otp"

	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"
)

// DateOfBirthLayout is the wire format accepted for dates of birth.
const DateOfBirthLayout = "2006-01-02"

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	case models.SigninRequest:
		return v.validateSigninRequest(ctx, value, fields...)
	case *models.SigninRequest:
		return v.validateSigninRequest(ctx, *value, fields...)

	case models.VerifyOTPRequest:
		return v.validateVerifyOTPRequest(ctx, value, fields...)
	case *models.VerifyOTPRequest:
		return v.validateVerifyOTPRequest(ctx, *value, fields...)

	case models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignupRequest(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDateOfBirth, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldDateOfBirth:
			if _, err := time.Parse(DateOfBirthLayout, req.DateOfBirth); err != nil {
				return ErrInvalidDateOfBirth
			}
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSigninRequest(_ context.Context, req models.SigninRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateVerifyOTPRequest(_ context.Context, req models.VerifyOTPRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldOTP}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldOTP:
			if !isValidOTP(req.OTP) {
				return ErrInvalidOTP
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateNoteRequest(_ context.Context, req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isValidOTP(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
