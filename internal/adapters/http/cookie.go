package http

import (
	"net/http"
	"time"
)

// writeSessionCookie issues the HttpOnly session cookie alongside the JSON
// token so browser clients ride the cookie and API clients use the body.
func (h *Handler) writeSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.gate.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.gate.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.gate.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.gate.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
