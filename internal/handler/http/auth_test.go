// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/service"
	"github.com/MKhiriev/hd-notes/internal/store"
	"github.com/MKhiriev/hd-notes/internal/utils"
	"github.com/MKhiriev/hd-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	signinFn      func(ctx context.Context, req models.SigninRequest) error
	verifyOTPFn   func(ctx context.Context, req models.VerifyOTPRequest) (models.Token, models.User, error)
	profileFn     func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Signin(ctx context.Context, req models.SigninRequest) error {
	return m.signinFn(ctx, req)
}

func (m *mockAuthService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.Token, models.User, error) {
	return m.verifyOTPFn(ctx, req)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validSignupBody is a convenience fixture used across multiple tests.
var validSignupBody = models.SignupRequest{
	Name:        "Alice",
	DateOfBirth: "1991-06-01",
	Email:       "alice@example.com",
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return models.User{UserID: 7, Name: req.Name, Email: req.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(jsonBody(t, validSignupBody)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OTP sent to email", resp.Message)
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(jsonBody(t, validSignupBody)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "already registered")
}

func TestSignup_InternalError(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
			return models.User{}, errors.New("db exploded")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(jsonBody(t, validSignupBody)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// internal details must not leak to the client
	assert.NotContains(t, rec.Body.String(), "db exploded")
}

// ─────────────────────────────────────────────
// signin
// ─────────────────────────────────────────────

func TestSignin_Success(t *testing.T) {
	auth := &mockAuthService{
		signinFn: func(_ context.Context, req models.SigninRequest) error {
			assert.Equal(t, "alice@example.com", req.Email)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.SigninRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/signin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OTP sent to email", resp.Message)
}

func TestSignin_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		signinFn: func(_ context.Context, _ models.SigninRequest) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.SigninRequest{Email: "ghost@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/signin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignin_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		signinFn: func(_ context.Context, _ models.SigninRequest) error {
			return service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.SigninRequest{Email: "broken"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/signin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// verifyOTP
// ─────────────────────────────────────────────

func TestVerifyOTP_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		verifyOTPFn: func(_ context.Context, req models.VerifyOTPRequest) (models.Token, models.User, error) {
			assert.Equal(t, "482913", req.OTP)
			return stubToken(signedToken), models.User{UserID: 7, Name: "Alice", Email: req.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.VerifyOTPRequest{Email: "alice@example.com", OTP: "482913"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/verify-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.verifyOTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VerifyOTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)

	// the passcode fields must never appear in the response body
	assert.NotContains(t, rec.Body.String(), "otp_code")
	assert.NotContains(t, rec.Body.String(), "otp_expires_at")
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	auth := &mockAuthService{
		verifyOTPFn: func(_ context.Context, _ models.VerifyOTPRequest) (models.Token, models.User, error) {
			return models.Token{}, models.User{}, service.ErrOTPInvalidOrExpired
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.VerifyOTPRequest{Email: "alice@example.com", OTP: "000000"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/verify-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.verifyOTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "invalid or expired")
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		verifyOTPFn: func(_ context.Context, _ models.VerifyOTPRequest) (models.Token, models.User, error) {
			return models.Token{}, models.User{}, fmt.Errorf("passcode verification failed: %w", store.ErrNoUserWasFound)
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.VerifyOTPRequest{Email: "ghost@example.com", OTP: "123456"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/verify-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.verifyOTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "no user was found")
}

func TestVerifyOTP_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/users/verify-otp", strings.NewReader("🙂"))
	rec := httptest.NewRecorder()

	h.verifyOTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

// requestWithUser stores a resolved user in the request context the same way
// the auth middleware does.
func requestWithUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, user.UserID)
	ctx = context.WithValue(ctx, utils.UserCtxKey, user)
	return r.WithContext(ctx)
}

func TestProfile_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	code := "482913"
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = requestWithUser(req, models.User{UserID: 7, Name: "Alice", Email: "alice@example.com", OTPCode: &code})
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)

	// stored passcode state must be stripped from the profile
	assert.NotContains(t, rec.Body.String(), "482913")
}

func TestProfile_NoUserInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
