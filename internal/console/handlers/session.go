package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/adapters/fleet"
	"github.com/zineb0v0/viaCargo/internal/adapters/sessions"
	"github.com/zineb0v0/viaCargo/internal/console/dto"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// SessionHandler logs operators in and out. Login delegates credential
// checking to the backend and keeps only the resulting backend cookie,
// server-side, under a fresh console token.
type SessionHandler struct {
	Auth  ports.Authenticator
	Store ports.SessionStore
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	cookie, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	token, err := sessions.NewToken()
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("mint session token failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	session := ports.Session{
		Token:         token,
		Email:         req.Email,
		BackendCookie: cookie,
		Page:          string(dto.PageDashboard),
	}
	if err := h.Store.Put(r.Context(), session); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("store session failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, r, http.StatusOK, map[string]string{"email": req.Email})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFrom(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "logged_out"})
		return
	}

	// Backend logout is best-effort; the console session dies regardless.
	if err := h.Auth.Logout(fleet.WithSession(r.Context(), session.BackendCookie)); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("backend logout failed")
	}
	if err := h.Store.Delete(r.Context(), session.Token); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("delete session failed")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *SessionHandler) Check(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFrom(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"authenticated": true,
		"email":         session.Email,
	})
}
