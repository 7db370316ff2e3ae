package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// sessionCookieName is the cookie carrying the signed session JWT.
const sessionCookieName = "token"

// setSessionCookie writes the session cookie for a freshly issued token.
// The cookie expiry tracks the token's "exp" claim so the browser drops the
// cookie together with the session. SameSite=None with Secure allows the
// cookie to travel on cross-site requests from the frontend origin.
func setSessionCookie(w http.ResponseWriter, token models.Token) {
	expires := time.Now().Add(24 * time.Hour)
	if token.Token != nil {
		if exp, err := token.Token.Claims.GetExpirationTime(); err == nil && exp != nil {
			expires = exp.Time
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie overwrites the session cookie with an already-expired
// empty one, which makes the browser discard it.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
