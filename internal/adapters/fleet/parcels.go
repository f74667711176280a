package fleet

import (
	"context"
	"net/http"

	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/platform/obs"
)

// ListParcels fetches the parcel stock. The parcel resource has shifted
// names across backend revisions, so the read goes through the
// resolution chain; each record is normalized individually.
func (c *Client) ListParcels(ctx context.Context) (_ []domain.Parcel, err error) {
	defer obs.Time(ctx, "fleet.ListParcels")(&err)

	records, err := c.resolveList(ctx, "list parcels", parcelEndpoints)
	if err != nil {
		return nil, err
	}

	parcels := make([]domain.Parcel, 0, len(records))
	for _, raw := range records {
		parcels = append(parcels, NormalizeParcel(raw))
	}

	return parcels, nil
}

// CreateParcel writes a new parcel using the current contract shape.
// Writes never probe legacy endpoints or emit legacy field names.
func (c *Client) CreateParcel(ctx context.Context, p domain.Parcel) (domain.Parcel, error) {
	var created map[string]any
	if err := c.call(ctx, "create parcel", http.MethodPost, "/api/colis", DenormalizeParcel(p), &created); err != nil {
		return domain.Parcel{}, err
	}
	return NormalizeParcel(created), nil
}

// UpdateParcel replaces the parcel identified by p.ID.
func (c *Client) UpdateParcel(ctx context.Context, p domain.Parcel) (domain.Parcel, error) {
	if p.ID == "" {
		return domain.Parcel{}, newError(KindInvalidSelection, "no parcel selected")
	}

	payload := DenormalizeParcel(p)
	delete(payload, "id_colis")

	var updated map[string]any
	if err := c.call(ctx, "update parcel", http.MethodPut, "/api/colis/"+p.ID, payload, &updated); err != nil {
		return domain.Parcel{}, err
	}
	return NormalizeParcel(updated), nil
}

// DeleteParcel removes a parcel from the backend.
func (c *Client) DeleteParcel(ctx context.Context, id string) error {
	if id == "" {
		return newError(KindInvalidSelection, "no parcel selected")
	}
	return c.call(ctx, "delete parcel", http.MethodDelete, "/api/colis/"+id, nil, nil)
}
