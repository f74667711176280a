package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zineb0v0/viaCargo/internal/console/dto"
	"github.com/zineb0v0/viaCargo/internal/ports"
	"github.com/zineb0v0/viaCargo/internal/services"
)

// TruckHandler exposes fleet CRUD plus the annotated fleet view.
type TruckHandler struct {
	Source  ports.TruckSource
	History ports.HistorySource
}

func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.Source.ListTrucks(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListTrucksResponse{Trucks: make([]dto.TruckResponse, 0, len(trucks))}
	for _, t := range trucks {
		res.Trucks = append(res.Trucks, dto.FromTruck(t))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// FleetView lists trucks annotated with utilization derived from the
// latest loading run.
func (h *TruckHandler) FleetView(w http.ResponseWriter, r *http.Request) {
	rows, err := services.BuildFleetView(r.Context(), h.Source, h.History)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.FleetViewResponse{Trucks: make([]dto.FleetRowResponse, 0, len(rows))}
	for _, row := range rows {
		res.Trucks = append(res.Trucks, dto.FleetRowResponse{
			TruckResponse:  dto.FromTruck(row.Truck),
			LoadedWeightKg: row.LoadedWeightKg,
			UtilizationPct: row.UtilizationPct,
			Overloaded:     row.Overloaded,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TruckRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.Source.CreateTruck(r.Context(), req.Domain(""))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.FromTruck(created))
}

func (h *TruckHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.TruckRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Source.UpdateTruck(r.Context(), req.Domain(chi.URLParam(r, "id")))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromTruck(updated))
}

func (h *TruckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Source.DeleteTruck(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
