package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hd-notes/internal/config"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/mail"
	"github.com/MKhiriev/hd-notes/internal/store"
	"github.com/MKhiriev/hd-notes/internal/utils"
	"github.com/MKhiriev/hd-notes/internal/validators"
	"github.com/MKhiriev/hd-notes/models"
)

// otpTTL is how long an issued passcode stays valid.
const otpTTL = 5 * time.Minute

// authService is the concrete implementation of AuthService.
// It owns the one-time passcode lifecycle (issue, deliver, consume) and the
// JWT session lifecycle, using a UserRepository for persistence and a mail
// Sender for delivery.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailSender delivers passcode emails. Delivery failures are logged and
	// swallowed so the enrolment flow never fails on a mail outage.
	mailSender mail.Sender

	// validator checks inbound request payloads before any state changes.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and mail Sender, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, mailSender mail.Sender, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailSender:     mailSender,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new account with a freshly generated passcode and emails
// the code to the given address.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided (wrapping the field error) if the payload fails
//     validation.
//   - A wrapped storage error if persistence fails (e.g. the email is taken,
//     see store.ErrEmailAlreadyRegistered).
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	dateOfBirth, err := time.Parse(validators.DateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		log.Err(err).Msg("passcode generation failed")
		return models.User{}, fmt.Errorf("passcode generation failed: %w", err)
	}
	expiresAt := time.Now().Add(otpTTL)

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		DateOfBirth:  dateOfBirth,
		Email:        normalizeEmail(req.Email),
		OTPCode:      &code,
		OTPExpiresAt: &expiresAt,
	}

	createdUser, err := a.userRepository.CreateUserWithCode(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.deliverCode(ctx, createdUser, code)

	return createdUser, nil
}

// Signin issues a fresh passcode for an existing account and emails it.
// Any previously issued code is overwritten and stops working immediately.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - A wrapped storage error if no account matches the email
//     (see store.ErrNoUserWasFound).
func (a *authService) Signin(ctx context.Context, req models.SigninRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid signin data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := normalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		log.Err(err).Msg("passcode generation failed")
		return fmt.Errorf("passcode generation failed: %w", err)
	}

	if err := a.userRepository.SetCode(ctx, email, code, time.Now().Add(otpTTL)); err != nil {
		log.Err(err).Str("email", email).Msg("passcode assignment failed")
		return fmt.Errorf("passcode assignment failed: %w", err)
	}

	a.deliverCode(ctx, user, code)

	return nil
}

// VerifyOTP consumes the submitted passcode and mints a session token.
//
// Verification is a single conditional update in the store, so a code can be
// consumed at most once even when two requests race.
//
// Returns the token and the verified user or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - A wrapped store.ErrNoUserWasFound if no account exists for the email.
//   - ErrOTPInvalidOrExpired if the account exists but no pending code matched.
func (a *authService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid verification data provided")
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := normalizeEmail(req.Email)

	user, err := a.userRepository.ConsumeCode(ctx, email, req.OTP, time.Now())
	if err != nil {
		log.Err(err).Str("email", email).Msg("passcode verification failed")

		// ConsumeCode matches zero rows both for a wrong code and for an
		// unknown email. Tell them apart so the caller can answer NotFound.
		if errors.Is(err, store.ErrNoCodeMatch) {
			if _, lookupErr := a.userRepository.FindUserByEmail(ctx, email); errors.Is(lookupErr, store.ErrNoUserWasFound) {
				return models.Token{}, models.User{}, fmt.Errorf("passcode verification failed: %w", lookupErr)
			}
		}

		return models.Token{}, models.User{}, ErrOTPInvalidOrExpired
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.Token{}, models.User{}, err
	}

	return token, user, nil
}

// Profile returns the account with the given identifier.
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// deliverCode emails the passcode without failing the caller. A user whose
// mail bounced can always request a new code via signin.
func (a *authService) deliverCode(ctx context.Context, user models.User, code string) {
	if err := a.mailSender.Send(ctx, mail.NewOTPMessage(user.Email, user.Name, code)); err != nil {
		logger.FromContext(ctx).Err(err).Str("email", user.Email).Msg("passcode email delivery failed")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
