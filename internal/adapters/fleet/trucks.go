package fleet

import (
	"context"
	"net/http"

	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/platform/obs"
)

// ListTrucks fetches the fleet through the truck resolution chain.
func (c *Client) ListTrucks(ctx context.Context) (_ []domain.Truck, err error) {
	defer obs.Time(ctx, "fleet.ListTrucks")(&err)

	records, err := c.resolveList(ctx, "list trucks", truckEndpoints)
	if err != nil {
		return nil, err
	}

	trucks := make([]domain.Truck, 0, len(records))
	for _, raw := range records {
		trucks = append(trucks, NormalizeTruck(raw))
	}

	return trucks, nil
}

// CreateTruck registers a new truck.
func (c *Client) CreateTruck(ctx context.Context, t domain.Truck) (domain.Truck, error) {
	var created map[string]any
	if err := c.call(ctx, "create truck", http.MethodPost, "/api/camions", DenormalizeTruck(t), &created); err != nil {
		return domain.Truck{}, err
	}
	return NormalizeTruck(created), nil
}

// UpdateTruck replaces the truck identified by t.ID.
func (c *Client) UpdateTruck(ctx context.Context, t domain.Truck) (domain.Truck, error) {
	if t.ID == "" {
		return domain.Truck{}, newError(KindInvalidSelection, "no truck selected")
	}

	payload := DenormalizeTruck(t)
	delete(payload, "id_camion")

	var updated map[string]any
	if err := c.call(ctx, "update truck", http.MethodPut, "/api/camions/"+t.ID, payload, &updated); err != nil {
		return domain.Truck{}, err
	}
	return NormalizeTruck(updated), nil
}

// DeleteTruck removes a truck from the backend.
func (c *Client) DeleteTruck(ctx context.Context, id string) error {
	if id == "" {
		return newError(KindInvalidSelection, "no truck selected")
	}
	return c.call(ctx, "delete truck", http.MethodDelete, "/api/camions/"+id, nil, nil)
}
