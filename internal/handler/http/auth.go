package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("invalid registration data")
		http.Error(w, "invalid registration data", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("name or email already taken")
			http.Error(w, "name or email already taken", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	h.sendSession(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("invalid login data")
		http.Error(w, "invalid login data", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, "incorrect email or password", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.sendSession(w, r, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "successfully logged out"}, http.StatusOK) //nolint:errcheck
}

// loggedIn reports session state without demanding authentication: any
// failure to read or validate the cookie simply yields false.
func (h *Handler) loggedIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokenString, err := getTokenFromCookie(r)
	if err != nil {
		utils.WriteJSON(w, false, http.StatusOK) //nolint:errcheck
		return
	}

	_, err = h.services.AuthService.ParseToken(ctx, tokenString)
	utils.WriteJSON(w, err == nil, http.StatusOK) //nolint:errcheck
}

// sendSession issues a fresh JWT for user, sets the session cookie, and
// writes the profile payload (token included) with the given status.
func (h *Handler) sendSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	utils.WriteJSON(w, models.NewProfileResponse(user, token.SignedString), status) //nolint:errcheck
}
