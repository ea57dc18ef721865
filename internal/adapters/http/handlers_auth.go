package http

import (
	"net/http"

	"github.com/Rango-SAD/lost-and-found-project/internal/application"
)

func (h *Handler) sendOtp(w http.ResponseWriter, r *http.Request) {
	var req application.SendOtpRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "send_otp", err)
		return
	}

	if err := h.service.RequestOtp(r.Context(), req); err != nil {
		writeMappedError(r.Context(), w, "send_otp", err)
		return
	}
	writeMessage(w, http.StatusOK, "verification code sent")
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}

	h.writeSessionCookie(w, res.Token, h.service.TokenTTL())
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}

	h.writeSessionCookie(w, res.Token, h.service.TokenTTL())
	writeSuccess(w, http.StatusOK, res)
}

// logout clears the session cookie. The token itself stays valid until its
// expiry; there is no server-side session state to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "logged out")
}
