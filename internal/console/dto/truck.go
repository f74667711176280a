package dto

import "github.com/zineb0v0/viaCargo/internal/domain"

type TruckRequest struct {
	Brand      string  `json:"brand"`
	CapacityKg float64 `json:"capacity_kg"`
	Status     string  `json:"status"`
}

type TruckResponse struct {
	ID         string  `json:"id"`
	Brand      string  `json:"brand"`
	CapacityKg float64 `json:"capacity_kg"`
	Status     string  `json:"status"`
}

type ListTrucksResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

// FleetRowResponse is a truck annotated with its share of the latest
// loading run. UtilizationPct is omitted when the ratio is undefined
// (zero capacity) or the truck took no part in the latest run.
type FleetRowResponse struct {
	TruckResponse
	LoadedWeightKg float64  `json:"loaded_weight_kg"`
	UtilizationPct *float64 `json:"utilization_pct,omitempty"`
	Overloaded     bool     `json:"overloaded"`
}

type FleetViewResponse struct {
	Trucks []FleetRowResponse `json:"trucks"`
}

func (r TruckRequest) Domain(id string) domain.Truck {
	return domain.Truck{
		ID:         id,
		Brand:      r.Brand,
		CapacityKg: r.CapacityKg,
		Status:     domain.TruckStatus(r.Status),
	}
}

func FromTruck(t domain.Truck) TruckResponse {
	return TruckResponse{
		ID:         t.ID,
		Brand:      t.Brand,
		CapacityKg: t.CapacityKg,
		Status:     string(t.Status),
	}
}
