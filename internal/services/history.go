package services

import (
	"github.com/zineb0v0/viaCargo/internal/domain"
)

// surrogate run key prefix for assignments written before the backend
// tracked run identifiers. Matches the backend's own fallback keying so
// operators see stable keys across both systems.
const noRunPrefix = "norun::"

// GroupRuns groups flat assignment rows into runs. Rows sharing a run
// identifier form one run; rows without one fall back to their
// executed-at timestamp as a surrogate key. The backend's given row
// order is preserved (runs appear in first-seen order, newest first as
// the backend emits them) and nothing is cached: every history fetch
// regroups from scratch.
func GroupRuns(assignments []domain.Assignment) []domain.Run {
	byKey := make(map[string]int, len(assignments))
	runs := make([]domain.Run, 0, len(assignments))

	for _, a := range assignments {
		key := runKey(a)

		idx, ok := byKey[key]
		if !ok {
			idx = len(runs)
			byKey[key] = idx
			runs = append(runs, domain.Run{
				Key:        key,
				RunID:      a.RunID,
				ExecutedAt: a.ExecutedAt,
			})
		}

		run := &runs[idx]
		run.Assignments = append(run.Assignments, a)
		run.ParcelCount++
		run.TotalWeightKg += a.WeightKg

		if a.TruckID != "" && !containsID(run.TruckIDs, a.TruckID) {
			run.TruckIDs = append(run.TruckIDs, a.TruckID)
		}
	}

	return runs
}

func runKey(a domain.Assignment) string {
	if a.RunID != "" {
		return a.RunID
	}
	if a.ExecutedAt != "" {
		return noRunPrefix + a.ExecutedAt
	}
	return noRunPrefix + "unknown"
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// ToggleExpandedRun is the transition function for the dashboard's
// run-detail view state. At most one run is expanded at a time:
// toggling the expanded run collapses it, toggling another run moves
// the expansion there.
func ToggleExpandedRun(current, key string) string {
	if key == "" || current == key {
		return ""
	}
	return key
}
