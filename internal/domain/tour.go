package domain

// DepotStop is the sentinel stop marking the fixed start/end point of a
// tour. It only ever appears at the boundary positions of a stop list.
const DepotStop = "DEPOT"

// Stop is one position in an optimized tour: either the depot sentinel
// or a parcel identifier.
type Stop struct {
	ParcelID string
	Depot    bool
}

// Tour is the result of one routing-optimization run for a truck.
// The non-depot stops are a permutation of the parcel identifiers
// assigned to that truck.
type Tour struct {
	ID              string
	TruckID         string
	TotalDistanceKm float64
	EstimatedHours  float64
	Stops           []Stop
}

// TruckLoad is one truck's share of a load plan, annotated with the
// derived capacity metrics the console renders.
type TruckLoad struct {
	TruckID        string
	ParcelIDs      []string
	LoadedWeightKg float64
	CapacityKg     float64
	// UtilizationPct is nil when capacity is zero (the ratio is
	// undefined and the truck is reported as overloaded instead).
	UtilizationPct *float64
	Overloaded     bool
}

// LoadPlan is the result of one loading-optimization (bin-packing) run.
// Capacity violations are advisory: the backend solver is the authority,
// so overloads are flagged on the TruckLoad rows rather than rejected.
type LoadPlan struct {
	ExecutedAt string
	Trucks     []TruckLoad
}

// ClientRef links a parcel identifier to the client name used when
// rendering tour stops.
type ClientRef struct {
	ParcelID string
	Name     string
}
