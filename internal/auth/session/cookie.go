// Package session owns the lifecycle of the admin session cookie: the token
// transport between browser and backend. There is no server-side session
// store; the signed token's own signature and expiry are the session state.
package session

import (
	"net/http"
	"time"
)

// CookieName is the fixed name of the admin session cookie.
const CookieName = "dotback_admin_token"

// Manager sets, reads, and clears the session cookie with fixed attributes:
// HTTP-only, SameSite strict, path "/", max-age equal to the token lifetime,
// and Secure outside local development.
type Manager struct {
	ttl    time.Duration
	secure bool
}

// NewManager constructs a cookie manager. secure should be true in any
// deployed environment.
func NewManager(ttl time.Duration, secure bool) *Manager {
	return &Manager{ttl: ttl, secure: secure}
}

// Set stores the token in the session cookie.
func (m *Manager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear deletes the cookie outright, independent of whether a token was
// present.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the token carried by the request, if any.
func (m *Manager) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
