package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("invalid password data")
		http.Error(w, "invalid password data", http.StatusBadRequest)
		return
	}

	user, err := h.services.PasswordService.ChangePassword(ctx, userID, req.CurrentPassword, req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password change failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// A password change rotates the session: a fresh token replaces the old one.
	h.sendSession(w, r, user, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("invalid email provided")
		http.Error(w, "invalid email provided", http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordService.ForgotPassword(ctx, req.Email); err != nil {
		log.Err(err).Msg("forgot password flow failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "token sent to email"}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resetToken := chi.URLParam(r, "resetToken")

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("invalid password data")
		http.Error(w, "invalid password data", http.StatusBadRequest)
		return
	}

	user, err := h.services.PasswordService.ResetPassword(ctx, resetToken, req.Password)
	if err != nil {
		log.Err(err).Msg("password reset failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// A successful reset logs the user in right away.
	h.sendSession(w, r, user, http.StatusOK)
}
