package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zineb0v0/viaCargo/internal/console/dto"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// ParcelHandler exposes the stock page's CRUD pass-through. All shapes
// cross the schema adapter; handlers never see wire field names.
type ParcelHandler struct {
	Source ports.ParcelSource
}

func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	parcels, err := h.Source.ListParcels(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListParcelsResponse{Parcels: make([]dto.ParcelResponse, 0, len(parcels))}
	for _, p := range parcels {
		res.Parcels = append(res.Parcels, dto.FromParcel(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ParcelRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.Source.CreateParcel(r.Context(), req.Domain(""))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.FromParcel(created))
}

func (h *ParcelHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ParcelRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Source.UpdateParcel(r.Context(), req.Domain(chi.URLParam(r, "id")))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromParcel(updated))
}

func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Source.DeleteParcel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
