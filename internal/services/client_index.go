package services

import (
	"github.com/zineb0v0/viaCargo/internal/domain"
)

// ClientIndex maps parcel identifiers to client names for rendering
// tour stops. It is built best-effort before a routing run; a missing
// or partial index degrades stop labels, never the tour itself.
type ClientIndex map[string]string

// BuildClientIndex indexes the routing service's client roster.
func BuildClientIndex(refs []domain.ClientRef) ClientIndex {
	ix := make(ClientIndex, len(refs))
	for _, ref := range refs {
		if ref.ParcelID != "" && ref.Name != "" {
			ix[ref.ParcelID] = ref.Name
		}
	}
	return ix
}

// IndexFromParcels builds the same index from the parcel stock, used
// as the fallback source when the client roster is unavailable.
func IndexFromParcels(parcels []domain.Parcel) ClientIndex {
	ix := make(ClientIndex, len(parcels))
	for _, p := range parcels {
		if p.ID != "" && p.ClientName != "" {
			ix[p.ID] = p.ClientName
		}
	}
	return ix
}

// StopView is a presentation-ready tour stop.
type StopView struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	ParcelID string `json:"parcel_id,omitempty"`
	Depot    bool   `json:"depot"`
}

// LabelStops renders a tour's stop sequence. Depot sentinels keep their
// fixed label; parcel stops resolve through the index, falling back to
// a synthetic "Parcel <id>" label when the index has no entry.
func LabelStops(stops []domain.Stop, ix ClientIndex) []StopView {
	views := make([]StopView, 0, len(stops))
	for i, stop := range stops {
		view := StopView{Position: i + 1, Depot: stop.Depot}

		switch {
		case stop.Depot:
			view.Label = "Depot"
		default:
			view.ParcelID = stop.ParcelID
			if name, ok := ix[stop.ParcelID]; ok {
				view.Label = name
			} else {
				view.Label = "Parcel " + stop.ParcelID
			}
		}

		views = append(views, view)
	}
	return views
}
