package fleet

import (
	"context"
	"net/http"

	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/platform/obs"
)

// ListAssignments fetches the loading history and flattens it to
// individual assignment rows. The backend groups rows by run server-side;
// the console re-derives its own grouping from the flat records so both
// the grouped and the older flat payload shapes stay readable.
func (c *Client) ListAssignments(ctx context.Context) (_ []domain.Assignment, err error) {
	defer obs.Time(ctx, "fleet.ListAssignments")(&err)

	var payload []map[string]any
	if err := c.call(ctx, "list assignments", http.MethodGet, "/api/assignments/", nil, &payload); err != nil {
		return nil, err
	}

	flat := make([]domain.Assignment, 0, len(payload))
	for _, entry := range payload {
		rows, ok := entry["assignments"].([]any)
		if !ok {
			// Pre-run backend revisions returned assignments directly.
			flat = append(flat, normalizeAssignment(entry, "", ""))
			continue
		}

		runID := idField(entry, []string{"run_id"})
		executedAt := stringField(entry, []string{"executed_at"})
		for _, row := range rows {
			raw, ok := row.(map[string]any)
			if !ok {
				continue
			}
			flat = append(flat, normalizeAssignment(raw, runID, executedAt))
		}
	}

	return flat, nil
}

// normalizeAssignment tolerates both history shapes: rows embedding full
// camion/colis snapshots and older rows carrying bare foreign keys.
func normalizeAssignment(raw map[string]any, runID, executedAt string) domain.Assignment {
	a := domain.Assignment{
		ID:         idField(raw, []string{"id_assignment", "id"}),
		RunID:      runID,
		ExecutedAt: executedAt,
		Time:       stringField(raw, []string{"time"}),
		TruckID:    idField(raw, []string{"id_camion"}),
		ParcelID:   idField(raw, []string{"id_colis"}),
	}

	if a.RunID == "" {
		a.RunID = idField(raw, []string{"run_id"})
	}
	if a.ExecutedAt == "" {
		a.ExecutedAt = a.Time
	}

	if camion, ok := raw["camion"].(map[string]any); ok && a.TruckID == "" {
		a.TruckID = idField(camion, truckIDAliases)
	}
	if colis, ok := raw["colis"].(map[string]any); ok {
		parcel := NormalizeParcel(colis)
		if a.ParcelID == "" {
			a.ParcelID = parcel.ID
		}
		a.ClientName = parcel.ClientName
		a.WeightKg = parcel.WeightKg
	}

	return a
}
