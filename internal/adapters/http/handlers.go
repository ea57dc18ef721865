package http

import (
	"net/http"

	"github.com/Rango-SAD/lost-and-found-project/internal/application"
)

// Handler is the HTTP adapter entrypoint for the listing API.
// It holds only the application service and the gate configuration so
// transport concerns stay out of the business layer.
type Handler struct {
	service *application.Service
	gate    GateConfig
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service, gate GateConfig) *Handler {
	if gate.CookieName == "" {
		gate.CookieName = "session_token"
	}
	return &Handler{service: service, gate: gate}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ready")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return
	}

	res, err := h.service.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		writeMappedError(r.Context(), w, "me", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}
