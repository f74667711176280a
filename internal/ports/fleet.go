package ports

import (
	"context"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

// Port: parcel stock reads and writes against the system of record.
type ParcelSource interface {
	ListParcels(ctx context.Context) ([]domain.Parcel, error)
	CreateParcel(ctx context.Context, p domain.Parcel) (domain.Parcel, error)
	UpdateParcel(ctx context.Context, p domain.Parcel) (domain.Parcel, error)
	DeleteParcel(ctx context.Context, id string) error
}

// Port: fleet (truck) reads and writes against the system of record.
type TruckSource interface {
	ListTrucks(ctx context.Context) ([]domain.Truck, error)
	CreateTruck(ctx context.Context, t domain.Truck) (domain.Truck, error)
	UpdateTruck(ctx context.Context, t domain.Truck) (domain.Truck, error)
	DeleteTruck(ctx context.Context, id string) error
}

// Port: flat assignment history reads.
type HistorySource interface {
	ListAssignments(ctx context.Context) ([]domain.Assignment, error)
}

// Port: the external bin-packing service.
type LoadOptimizer interface {
	RunLoadOptimization(ctx context.Context) (domain.LoadPlan, error)
}

// Port: the external route-optimization service plus the client roster
// used to label its stops.
type RouteOptimizer interface {
	RunRouteOptimization(ctx context.Context, truckID string) (domain.Tour, error)
	ListTourClients(ctx context.Context) ([]domain.ClientRef, error)
}

// Port: operator authentication against the backend.
type Authenticator interface {
	// Login returns the backend session cookie on success.
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
}
