package dto

import (
	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/services"
)

type AssignmentResponse struct {
	ID         string  `json:"id"`
	Time       string  `json:"time"`
	TruckID    string  `json:"truck_id"`
	ParcelID   string  `json:"parcel_id"`
	ClientName string  `json:"client_name,omitempty"`
	WeightKg   float64 `json:"weight_kg"`
}

// RunResponse is one loading run in the history table. Assignments are
// included only for the currently expanded run.
type RunResponse struct {
	Key           string               `json:"key"`
	RunID         string               `json:"run_id,omitempty"`
	ExecutedAt    string               `json:"executed_at,omitempty"`
	TruckIDs      []string             `json:"truck_ids"`
	ParcelCount   int                  `json:"parcel_count"`
	TotalWeightKg float64              `json:"total_weight_kg"`
	Expanded      bool                 `json:"expanded"`
	Assignments   []AssignmentResponse `json:"assignments,omitempty"`
}

type DashboardResponse struct {
	ParcelCount   int              `json:"parcel_count"`
	TotalWeightKg float64          `json:"total_weight_kg"`
	Parcels       []ParcelResponse `json:"parcels"`
	Runs          []RunResponse    `json:"runs"`

	ParcelsDegraded bool `json:"parcels_degraded,omitempty"`
	HistoryDegraded bool `json:"history_degraded,omitempty"`
}

func FromAssignment(a domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID,
		Time:       a.Time,
		TruckID:    a.TruckID,
		ParcelID:   a.ParcelID,
		ClientName: a.ClientName,
		WeightKg:   a.WeightKg,
	}
}

// FromOverview renders the dashboard aggregate, expanding at most the
// one run whose key matches expandedRun.
func FromOverview(o services.Overview, expandedRun string) DashboardResponse {
	res := DashboardResponse{
		ParcelCount:     o.ParcelCount,
		TotalWeightKg:   o.TotalWeightKg,
		Parcels:         make([]ParcelResponse, 0, len(o.Parcels)),
		Runs:            make([]RunResponse, 0, len(o.Runs)),
		ParcelsDegraded: o.ParcelsDegraded,
		HistoryDegraded: o.HistoryDegraded,
	}

	for _, p := range o.Parcels {
		res.Parcels = append(res.Parcels, FromParcel(p))
	}

	for _, run := range o.Runs {
		rr := RunResponse{
			Key:           run.Key,
			RunID:         run.RunID,
			ExecutedAt:    run.ExecutedAt,
			TruckIDs:      run.TruckIDs,
			ParcelCount:   run.ParcelCount,
			TotalWeightKg: run.TotalWeightKg,
			Expanded:      expandedRun != "" && run.Key == expandedRun,
		}
		if rr.Expanded {
			rr.Assignments = make([]AssignmentResponse, 0, len(run.Assignments))
			for _, a := range run.Assignments {
				rr.Assignments = append(rr.Assignments, FromAssignment(a))
			}
		}
		res.Runs = append(res.Runs, rr)
	}

	return res
}
