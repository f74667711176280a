package dto

import (
	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/services"
)

// TruckLoadResponse is one truck's slice of a load plan.
type TruckLoadResponse struct {
	TruckID        string   `json:"truck_id"`
	ParcelIDs      []string `json:"parcel_ids"`
	LoadedWeightKg float64  `json:"loaded_weight_kg"`
	CapacityKg     float64  `json:"capacity_kg"`
	UtilizationPct *float64 `json:"utilization_pct,omitempty"`
	Overloaded     bool     `json:"overloaded"`
}

type LoadPlanResponse struct {
	ExecutedAt string              `json:"executed_at"`
	Trucks     []TruckLoadResponse `json:"trucks"`
}

type TourResponse struct {
	ID              string              `json:"id"`
	TruckID         string              `json:"truck_id"`
	TotalDistanceKm float64             `json:"total_distance_km"`
	EstimatedHours  float64             `json:"estimated_hours"`
	Stops           []services.StopView `json:"stops"`
}

// WorkflowResponse is the lifecycle snapshot of one optimization
// workflow. Result fields are set only in the succeeded state; Err and
// ErrKind only in the failed state.
type WorkflowResponse struct {
	State    string            `json:"state"`
	Plan     *LoadPlanResponse `json:"plan,omitempty"`
	Tour     *TourResponse     `json:"tour,omitempty"`
	Err      string            `json:"error,omitempty"`
	ErrKind  string            `json:"error_kind,omitempty"`
	Rejected bool              `json:"rejected,omitempty"`
}

type StartRoutingRequest struct {
	TruckID string `json:"truck_id"`
}

type RoutesPageResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

func FromLoadPlan(plan domain.LoadPlan) *LoadPlanResponse {
	res := &LoadPlanResponse{
		ExecutedAt: plan.ExecutedAt,
		Trucks:     make([]TruckLoadResponse, 0, len(plan.Trucks)),
	}
	for _, load := range plan.Trucks {
		res.Trucks = append(res.Trucks, TruckLoadResponse{
			TruckID:        load.TruckID,
			ParcelIDs:      load.ParcelIDs,
			LoadedWeightKg: load.LoadedWeightKg,
			CapacityKg:     load.CapacityKg,
			UtilizationPct: load.UtilizationPct,
			Overloaded:     load.Overloaded,
		})
	}
	return res
}

func FromRoutingResult(r services.RoutingResult) *TourResponse {
	return &TourResponse{
		ID:              r.Tour.ID,
		TruckID:         r.Tour.TruckID,
		TotalDistanceKm: r.Tour.TotalDistanceKm,
		EstimatedHours:  r.Tour.EstimatedHours,
		Stops:           r.Stops,
	}
}
