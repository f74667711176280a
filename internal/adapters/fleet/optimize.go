package fleet

import (
	"context"
	"net/http"
	"sort"

	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/platform/obs"
)

// RunLoadOptimization triggers the backend bin-packing service and
// normalizes its repartition payload into a LoadPlan skeleton (truck to
// parcel-id mapping). Capacity metrics are derived later by the caller;
// the solver is the authority on the mapping itself.
//
// The call has no request body and no explicit bound: the backend
// publishes no contract for its runtime, so the transport default
// ceiling acts as the timeout.
func (c *Client) RunLoadOptimization(ctx context.Context) (_ domain.LoadPlan, err error) {
	defer obs.Time(ctx, "fleet.RunLoadOptimization")(&err)

	var payload struct {
		DateExecution string         `json:"date_execution"`
		Repartition   map[string]any `json:"repartition"`
	}
	if err := c.call(ctx, "loading optimization", http.MethodGet, "/api/solution/sac_a_dos", nil, &payload); err != nil {
		return domain.LoadPlan{}, err
	}

	plan := domain.LoadPlan{
		ExecutedAt: payload.DateExecution,
		Trucks:     make([]domain.TruckLoad, 0, len(payload.Repartition)),
	}

	for truckID, v := range payload.Repartition {
		load := domain.TruckLoad{TruckID: truckID}
		if ids, ok := v.([]any); ok {
			load.ParcelIDs = make([]string, 0, len(ids))
			for _, id := range ids {
				if s := anyID(id); s != "" {
					load.ParcelIDs = append(load.ParcelIDs, s)
				}
			}
		}
		plan.Trucks = append(plan.Trucks, load)
	}

	// Map iteration order is random; present trucks deterministically.
	sort.Slice(plan.Trucks, func(i, j int) bool {
		return plan.Trucks[i].TruckID < plan.Trucks[j].TruckID
	})

	return plan, nil
}

// RunRouteOptimization asks the backend TSP service for an optimized
// tour for one truck. The caller bounds the context; on expiry the
// classified error is Timeout and any late response is the caller's to
// discard.
func (c *Client) RunRouteOptimization(ctx context.Context, truckID string) (_ domain.Tour, err error) {
	defer obs.Time(ctx, "fleet.RunRouteOptimization")(&err)

	if truckID == "" {
		return domain.Tour{}, newError(KindInvalidSelection, "no truck selected")
	}

	var raw map[string]any
	if err := c.call(ctx, "routing optimization", http.MethodPost, "/api/tournee/optimize/"+truckID, struct{}{}, &raw); err != nil {
		return domain.Tour{}, err
	}

	tour := domain.Tour{
		ID:              idField(raw, []string{"id_tournee", "id"}),
		TruckID:         idField(raw, []string{"camion_id", "id_camion"}),
		TotalDistanceKm: numberField(raw, []string{"distance_totale", "total_distance"}),
		EstimatedHours:  numberField(raw, []string{"temps_estime", "estimated_time"}),
	}

	if order, ok := raw["ordre_clients"].([]any); ok {
		tour.Stops = make([]domain.Stop, 0, len(order))
		for _, entry := range order {
			if s, ok := entry.(string); ok && s == domain.DepotStop {
				tour.Stops = append(tour.Stops, domain.Stop{Depot: true})
				continue
			}
			if id := anyID(entry); id != "" {
				tour.Stops = append(tour.Stops, domain.Stop{ParcelID: id})
			}
		}
	}

	return tour, nil
}

// ListTourClients fetches the client roster the routing service plans
// over. Callers treat this as best-effort: it only feeds the
// human-readable stop labels.
func (c *Client) ListTourClients(ctx context.Context) ([]domain.ClientRef, error) {
	var records []map[string]any
	if err := c.call(ctx, "list tour clients", http.MethodGet, "/api/tournee/clients", nil, &records); err != nil {
		return nil, err
	}

	refs := make([]domain.ClientRef, 0, len(records))
	for _, raw := range records {
		refs = append(refs, domain.ClientRef{
			ParcelID: idField(raw, []string{"id_client", "id_colis", "id"}),
			Name:     stringField(raw, []string{"nom", "nom_client", "name"}),
		})
	}

	return refs, nil
}
