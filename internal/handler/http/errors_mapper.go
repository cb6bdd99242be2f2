package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hd-notes/internal/service"
	"github.com/MKhiriev/hd-notes/internal/store"
	"github.com/MKhiriev/hd-notes/internal/utils"
	"github.com/MKhiriev/hd-notes/models"
)

// errorStatusMap routes well-known domain errors to HTTP status codes.
// A duplicate signup and a failed verification both map to 400 so the API
// reveals nothing beyond what the caller already submitted.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrOTPInvalidOrExpired:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyRegistered: http.StatusBadRequest,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrNoCodeMatch:            http.StatusBadRequest,
	store.ErrNoteNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for a failed request.
// Internal failures are reduced to the generic status text so storage
// details never leak into responses.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err, status)}, status)
}
