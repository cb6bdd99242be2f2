// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/service"
	"github.com/MKhiriev/hd-notes/internal/store"
	"github.com/MKhiriev/hd-notes/internal/utils"
	"github.com/MKhiriev/hd-notes/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	createNoteFn func(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error)
	listNotesFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	deleteNoteFn func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
	return m.createNoteFn(ctx, userID, req)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return m.deleteNoteFn(ctx, userID, noteID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithNotes(t *testing.T, notes service.NoteService) *Handler {
	t.Helper()
	svcs := &service.Services{
		NoteService: notes,
	}
	return NewHandler(svcs, logger.Nop())
}

// requestWithUserID stores userID in the request context the same way the
// auth middleware does.
func requestWithUserID(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// requestWithNoteID adds a chi route context carrying the noteID URL param.
func requestWithNoteID(r *http.Request, noteID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("noteID", noteID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createNote
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
			assert.Equal(t, int64(7), userID)
			return models.Note{NoteID: 42, UserID: userID, Title: req.Title, Content: req.Content}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := jsonBody(t, models.CreateNoteRequest{Title: "groceries", Content: "milk"})
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(body))
	req = requestWithUserID(req, 7)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.CreateNoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Note created", resp.Message)
	assert.Equal(t, int64(42), resp.Note.NoteID)
}

func TestCreateNote_Unauthenticated(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateNote_InvalidData(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, _ int64, _ models.CreateNoteRequest) (models.Note, error) {
			return models.Note{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := jsonBody(t, models.CreateNoteRequest{Title: "", Content: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(body))
	req = requestWithUserID(req, 7)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// listNotes
// ─────────────────────────────────────────────

func TestListNotes_ReturnsOwnNotesOnly(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			require.Equal(t, int64(7), userID)
			return []models.Note{
				{NoteID: 43, UserID: 7, Title: "newer"},
				{NoteID: 42, UserID: 7, Title: "older"},
			}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req = requestWithUserID(req, 7)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(43), resp[0].NoteID)
}

func TestListNotes_EmptyList(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req = requestWithUserID(req, 7)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ─────────────────────────────────────────────
// deleteNote
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, userID, noteID int64) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(42), noteID)
			return nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/42", nil)
	req = requestWithUserID(req, 7)
	req = requestWithNoteID(req, "42")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Note deleted", resp.Message)
}

func TestDeleteNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNoteNotFound
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/999", nil)
	req = requestWithUserID(req, 7)
	req = requestWithNoteID(req, "999")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNote_BadNoteID(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/abc", nil)
	req = requestWithUserID(req, 7)
	req = requestWithNoteID(req, "abc")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
