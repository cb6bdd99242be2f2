package http

import (
	"net/http"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/utils"
)

// profile returns the authenticated account. The auth middleware has already
// resolved the token subject, so the user is taken straight from the context.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := utils.GetUserFromContext(r.Context())
	if err != nil {
		log.Err(err).Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}
