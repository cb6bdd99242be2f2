package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/utils"
	"github.com/MKhiriev/hd-notes/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user signup ended with error")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered, passcode sent")

	utils.WriteJSON(w, models.MessageResponse{Message: "OTP sent to email"}, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Signin(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("user signin ended with error")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OTP sent to email"}, http.StatusOK)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	token, user, err := h.services.AuthService.VerifyOTP(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("passcode verification ended with error")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully verified")

	utils.WriteJSON(w, models.VerifyOTPResponse{
		Message: "Login successful",
		Token:   token.SignedString,
		User:    user.Profile(),
	}, http.StatusOK)
}
