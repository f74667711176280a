package domain

// TruckStatus is the canonical availability state of a truck.
type TruckStatus string

const (
	TruckAvailable    TruckStatus = "available"
	TruckInDelivery   TruckStatus = "in_delivery"
	TruckOutOfService TruckStatus = "out_of_service"
)

// A delivery vehicle with a weight capacity.
// Like parcels, trucks live in the fleet backend; the console never
// owns them and re-fetches on every view.
type Truck struct {
	ID         string
	Brand      string
	CapacityKg float64
	Status     TruckStatus
}
