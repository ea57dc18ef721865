package http

import (
	"net/http"
	"strings"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
)

// GateConfig controls the request authentication gate.
type GateConfig struct {
	// CookieName is the session cookie carrying the token.
	CookieName string
	// CookieSecure marks issued cookies Secure; off for plain-HTTP dev.
	CookieSecure bool
	// PublicPrefixes lists path prefixes that bypass the gate entirely.
	PublicPrefixes []string
}

func (c GateConfig) isPublicPath(path string) bool {
	for _, prefix := range c.PublicPrefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// authGateMiddleware authenticates every request whose path is not public.
// The session cookie takes precedence over the Authorization header; a
// missing or invalid token is rejected outright rather than passed through
// anonymously.
func (h *Handler) authGateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.gate.isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		raw := h.tokenFromRequest(r)
		if raw == "" {
			status, code, msg := mapDomainError(domain.ErrUnauthenticated)
			logHTTPOperationError(r.Context(), "auth_gate", status, code, msg, nil)
			writeError(w, status, code, msg)
			return
		}

		claims, err := h.service.ValidateToken(raw)
		if err != nil {
			status, code, msg := mapDomainError(err)
			logHTTPOperationError(r.Context(), "auth_gate", status, code, msg, err)
			writeError(w, status, code, msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
	})
}

func (h *Handler) tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(h.gate.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token, err := bearerTokenFromHeader(r.Header.Get("Authorization")); err == nil {
		return token
	}
	return ""
}
