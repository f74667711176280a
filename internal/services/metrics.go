package services

import (
	"math"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

// TotalWeight sums parcel weights in kilograms. Empty input yields 0.
func TotalWeight(parcels []domain.Parcel) float64 {
	var sum float64
	for _, p := range parcels {
		sum += p.WeightKg
	}
	return sum
}

// Utilization reports loaded weight as a percentage of capacity.
// A zero (or negative) capacity makes the ratio undefined; instead of
// dividing, the result is +Inf so the truck always reads as overloaded.
func Utilization(loadedKg, capacityKg float64) float64 {
	if capacityKg <= 0 {
		return math.Inf(1)
	}
	return loadedKg / capacityKg * 100
}

// IsOverloaded is true for any utilization strictly above 100%.
func IsOverloaded(percent float64) bool {
	return percent > 100
}

// AnnotateLoadPlan fills the derived capacity metrics on each truck of
// a load plan, given the current parcel and truck snapshots. Overload
// is advisory: the backend solver already committed the mapping, so
// violations are flagged and never rejected here.
//
// Parcels or trucks missing from the snapshots contribute zero weight
// or zero capacity; the metrics degrade rather than fail.
func AnnotateLoadPlan(plan *domain.LoadPlan, parcels []domain.Parcel, trucks []domain.Truck) {
	weightByParcel := make(map[string]float64, len(parcels))
	for _, p := range parcels {
		weightByParcel[p.ID] = p.WeightKg
	}

	capacityByTruck := make(map[string]float64, len(trucks))
	for _, t := range trucks {
		capacityByTruck[t.ID] = t.CapacityKg
	}

	for i := range plan.Trucks {
		load := &plan.Trucks[i]

		var loaded float64
		for _, id := range load.ParcelIDs {
			loaded += weightByParcel[id]
		}
		load.LoadedWeightKg = loaded
		load.CapacityKg = capacityByTruck[load.TruckID]

		pct := Utilization(loaded, load.CapacityKg)
		load.Overloaded = IsOverloaded(pct)
		if math.IsInf(pct, 1) {
			load.UtilizationPct = nil
			continue
		}
		load.UtilizationPct = &pct
	}
}
