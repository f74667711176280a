package dto

import "github.com/zineb0v0/viaCargo/internal/domain"

type ParcelRequest struct {
	ClientName  string  `json:"client_name"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Deadline    string  `json:"deadline"`
	Status      string  `json:"status"`
}

type ParcelResponse struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"client_name"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Deadline    string  `json:"deadline"`
	Status      string  `json:"status"`
}

type ListParcelsResponse struct {
	Parcels []ParcelResponse `json:"parcels"`
}

func (r ParcelRequest) Domain(id string) domain.Parcel {
	return domain.Parcel{
		ID:          id,
		ClientName:  r.ClientName,
		Destination: r.Destination,
		WeightKg:    r.WeightKg,
		Deadline:    r.Deadline,
		Status:      domain.ParcelStatus(r.Status),
	}
}

func FromParcel(p domain.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:          p.ID,
		ClientName:  p.ClientName,
		Destination: p.Destination,
		WeightKg:    p.WeightKg,
		Deadline:    p.Deadline,
		Status:      string(p.Status),
	}
}
