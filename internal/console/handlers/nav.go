package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/console/dto"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// NavHandler tracks the operator's active page so the console reopens
// where they left off.
type NavHandler struct {
	Store ports.SessionStore
}

func (h *NavHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	writeJSON(w, r, http.StatusOK, map[string]string{
		"page": string(dto.ParsePage(sess.Page)),
	})
}

type setPageRequest struct {
	Page string `json:"page"`
}

func (h *NavHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setPageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	sess, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	page := dto.ParsePage(req.Page)
	sess.Page = string(page)
	if err := h.Store.Put(r.Context(), sess); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("persist active page failed")
		writeError(w, r, http.StatusInternalServerError, "could not save view state")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"page": string(page)})
}
