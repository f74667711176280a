package handlers

import (
	"net/http"

	"github.com/zineb0v0/viaCargo/internal/adapters/fleet"
	"github.com/zineb0v0/viaCargo/internal/console/dto"
	"github.com/zineb0v0/viaCargo/internal/services"
)

// OptimizeHandler drives the two optimization workflows. Start
// endpoints return immediately; the UI polls the status endpoints
// until the workflow leaves the loading state.
type OptimizeHandler struct {
	Orc *services.Orchestrator
}

// StartLoading kicks off truck loading. A start while one is already
// in flight is rejected, not queued.
func (h *OptimizeHandler) StartLoading(w http.ResponseWriter, r *http.Request) {
	if !h.Orc.StartLoading(r.Context()) {
		writeJSON(w, r, http.StatusConflict, dto.WorkflowResponse{
			State:    string(services.StateLoading),
			Rejected: true,
		})
		return
	}
	writeJSON(w, r, http.StatusAccepted, dto.WorkflowResponse{State: string(services.StateLoading)})
}

func (h *OptimizeHandler) LoadingStatus(w http.ResponseWriter, r *http.Request) {
	st := h.Orc.LoadingStatus()
	res := dto.WorkflowResponse{State: string(st.State)}
	if st.Result != nil {
		res.Plan = dto.FromLoadPlan(*st.Result)
	}
	if st.Err != nil {
		res.Err = fleet.Message(st.Err)
		res.ErrKind = string(fleet.KindOf(st.Err))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// RoutesPage preloads everything the routing page needs: the truck
// roster to pick from, plus the client index and assignment count the
// next StartRouting will rely on.
func (h *OptimizeHandler) RoutesPage(w http.ResponseWriter, r *http.Request) {
	trucks := h.Orc.PrepareRouting(r.Context())

	res := dto.RoutesPageResponse{Trucks: make([]dto.TruckResponse, 0, len(trucks))}
	for _, t := range trucks {
		res.Trucks = append(res.Trucks, dto.FromTruck(t))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OptimizeHandler) StartRouting(w http.ResponseWriter, r *http.Request) {
	var req dto.StartRoutingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	started, err := h.Orc.StartRouting(r.Context(), req.TruckID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if !started {
		writeJSON(w, r, http.StatusConflict, dto.WorkflowResponse{
			State:    string(services.StateLoading),
			Rejected: true,
		})
		return
	}
	writeJSON(w, r, http.StatusAccepted, dto.WorkflowResponse{State: string(services.StateLoading)})
}

func (h *OptimizeHandler) RoutingStatus(w http.ResponseWriter, r *http.Request) {
	st := h.Orc.RoutingStatus()
	res := dto.WorkflowResponse{State: string(st.State)}
	if st.Result != nil {
		res.Tour = dto.FromRoutingResult(*st.Result)
	}
	if st.Err != nil {
		res.Err = fleet.Message(st.Err)
		res.ErrKind = string(fleet.KindOf(st.Err))
	}
	writeJSON(w, r, http.StatusOK, res)
}
