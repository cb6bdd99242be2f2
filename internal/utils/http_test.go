package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/hd-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"message": "ok"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
}

func TestWriteJSON_Slice(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, []int{1, 2, 3}, http.StatusOK)

	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, ErrNoUserIDInContext)
}

func TestGetUserIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(7))

	userID, err := GetUserIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserFromContext(req.Context())
	assert.ErrorIs(t, err, ErrNoUserInContext)
}

func TestGetUserFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, models.User{UserID: 7, Email: "alice@example.com"})

	user, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
}
