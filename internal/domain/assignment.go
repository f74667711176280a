package domain

// Assignment records one parcel loaded onto one truck by a
// loading-optimization run. Assignments are produced by the backend and
// never mutated afterwards; the console only reads them.
//
// RunID is empty for rows written before the backend tracked runs.
// ClientName and WeightKg are denormalized from the parcel snapshot the
// backend embeds in each history row.
type Assignment struct {
	ID         string
	RunID      string
	ExecutedAt string
	Time       string
	TruckID    string
	ParcelID   string
	ClientName string
	WeightKg   float64
}

// Run is a derived grouping of assignments that share a run identifier.
// It is materialized on every history fetch and never persisted locally.
type Run struct {
	// Key identifies the run in view state: the run id when present,
	// otherwise a surrogate built from the executed-at timestamp.
	Key           string
	RunID         string
	ExecutedAt    string
	TruckIDs      []string
	ParcelCount   int
	TotalWeightKg float64
	Assignments   []Assignment
}
