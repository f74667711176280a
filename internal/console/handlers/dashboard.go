package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/console/dto"
	"github.com/zineb0v0/viaCargo/internal/ports"
	"github.com/zineb0v0/viaCargo/internal/services"
)

// DashboardHandler serves the stock summary and grouped assignment
// history. Which run is expanded is per-operator state kept in the
// console session, so a reload lands on the same view.
type DashboardHandler struct {
	Parcels ports.ParcelSource
	History ports.HistorySource
	Store   ports.SessionStore
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())

	overview := services.BuildOverview(r.Context(), h.Parcels, h.History)
	writeJSON(w, r, http.StatusOK, dto.FromOverview(overview, sess.ExpandedRun))
}

type toggleRunRequest struct {
	RunKey string `json:"run_key"`
}

// ToggleRun expands the named run, or collapses it when it is already
// the expanded one. An empty key collapses unconditionally.
func (h *DashboardHandler) ToggleRun(w http.ResponseWriter, r *http.Request) {
	var req toggleRunRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	sess, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	sess.ExpandedRun = services.ToggleExpandedRun(sess.ExpandedRun, req.RunKey)
	if err := h.Store.Put(r.Context(), sess); err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			writeError(w, r, http.StatusUnauthorized, "session expired")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("persist expanded run failed")
		writeError(w, r, http.StatusInternalServerError, "could not save view state")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"expanded_run": sess.ExpandedRun})
}
