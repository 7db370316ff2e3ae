package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based JWT authentication.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseToken], confirms the account behind the token
// still exists, and — on success — stores the authenticated user's ID in the
// request context under [utils.UserIDCtxKey] before delegating to the next
// handler.
//
// Every rejection answers with a uniform HTTP 401 Unauthorized so that the
// response does not reveal whether the cookie was missing, malformed,
// expired, forged, or belonged to a since-deleted account. The concrete
// cause is still logged via the context-scoped logger obtained from
// [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// A token outlives the account it was minted for; make sure the user
		// behind it still exists before letting the request through.
		if _, err := h.services.ProfileService.GetProfile(ctx, token.UserID); err != nil {
			log.Err(err).Int64("user_id", token.UserID).Msg("session token holder lookup failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the session JWT from the request's cookie jar.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the session cookie is absent.
//   - [ErrEmptySessionToken] — if the cookie exists but carries no value.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoSessionCookie
		}
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}

	return cookie.Value, nil
}
