package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and one-time passcode state against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUserWithCode persists a new account and its initial signup passcode
// in one INSERT, returning the fully populated [models.User] with
// server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUserWithCode(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUserWithCode, user.Name, user.DateOfBirth, user.Email, user.OTPCode, user.OTPExpiresAt)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithCode").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyRegistered
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Name, &user.DateOfBirth, &user.Email, &user.OTPCode, &user.OTPExpiresAt, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithCode").Msg("error: scanning error")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches the given
// normalized address.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the account with the given durable identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.DateOfBirth, &foundUser.Email, &foundUser.OTPCode, &foundUser.OTPExpiresAt, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// SetCode replaces the pending passcode and its expiry for an existing
// account. The previously stored code, if any, is invalidated immediately.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
func (r *userRepository) SetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, setCode, email, code, expiresAt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.SetCode").Msg("error: row is nil")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	var userID int64
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.SetCode").Msg("error: scanning error")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}

// ConsumeCode performs the atomic match-and-clear verification update.
// The returned user carries no passcode fields: the RETURNING clause reads
// the row after the update has nulled them.
//
// Error handling:
//   - No row satisfied the condition → [ErrNoCodeMatch]. The caller decides
//     whether that means a wrong code, an expired one, or an already
//     consumed one; the store does not distinguish.
func (r *userRepository) ConsumeCode(ctx context.Context, email, code string, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, consumeCode, email, code, now)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ConsumeCode").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&user.UserID, &user.Name, &user.DateOfBirth, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoCodeMatch
		}
		log.Err(err).Str("func", "*userRepository.ConsumeCode").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ClearExpiredCodes nulls every passcode pair whose expiry is strictly in
// the past and returns the number of affected rows.
func (r *userRepository) ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearExpiredCodes, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredCodes").Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
