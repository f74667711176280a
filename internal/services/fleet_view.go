package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// TruckRow is one fleet-view row: the truck plus utilization derived
// from its share of the most recent loading run.
type TruckRow struct {
	Truck          domain.Truck
	LoadedWeightKg float64
	UtilizationPct *float64
	Overloaded     bool
}

// BuildFleetView lists the fleet annotated with per-truck load metrics
// from the latest run. The truck fetch is authoritative (its failure is
// the page's failure); the history fetch is advisory and degrades to
// unannotated rows.
func BuildFleetView(ctx context.Context, trucks ports.TruckSource, history ports.HistorySource) ([]TruckRow, error) {
	fleet, err := trucks.ListTrucks(ctx)
	if err != nil {
		return nil, err
	}

	loadedByTruck := map[string]float64{}
	assignments, err := history.ListAssignments(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("history fetch failed, fleet utilization unavailable")
	} else if runs := GroupRuns(assignments); len(runs) > 0 {
		// Runs arrive newest first; the head is the latest loading run.
		for _, a := range runs[0].Assignments {
			loadedByTruck[a.TruckID] += a.WeightKg
		}
	}

	rows := make([]TruckRow, 0, len(fleet))
	for _, t := range fleet {
		row := TruckRow{Truck: t, LoadedWeightKg: loadedByTruck[t.ID]}

		// Trucks untouched by the latest run stay unannotated rather
		// than reading as 0% loaded.
		if _, part := loadedByTruck[t.ID]; part {
			pct := Utilization(row.LoadedWeightKg, t.CapacityKg)
			row.Overloaded = IsOverloaded(pct)
			if !math.IsInf(pct, 1) {
				row.UtilizationPct = &pct
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}
