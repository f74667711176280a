package domain

// ParcelStatus is the canonical lifecycle state of a parcel.
type ParcelStatus string

const (
	ParcelInStock    ParcelStatus = "in_stock"
	ParcelInDelivery ParcelStatus = "in_delivery"
	ParcelDelivered  ParcelStatus = "delivered"
)

// Represents a single shipment item owned by the fleet backend.
// The console holds transient, read-mostly copies: identifiers are
// backend-assigned and opaque (stored as strings, never parsed), and
// the deadline is carried as the ISO-8601 string the backend emits.
type Parcel struct {
	ID          string
	ClientName  string
	Destination string
	WeightKg    float64
	Deadline    string
	Status      ParcelStatus
}
