package services

import (
	"context"
	"errors"
	"testing"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

func TestBuildOverview(t *testing.T) {
	s := &stubFleet{
		listParcels: func(ctx context.Context) ([]domain.Parcel, error) {
			return []domain.Parcel{
				{ID: "1", WeightKg: 120.5},
				{ID: "2", WeightKg: 640},
			}, nil
		},
		listHistory: func(ctx context.Context) ([]domain.Assignment, error) {
			return []domain.Assignment{
				{RunID: "run-1", TruckID: "1", ParcelID: "1", WeightKg: 120.5},
			}, nil
		},
	}

	o := BuildOverview(context.Background(), s, s)

	if o.ParcelCount != 2 || o.TotalWeightKg != 760.5 {
		t.Fatalf("unexpected totals %+v", o)
	}
	if len(o.Runs) != 1 || o.Runs[0].Key != "run-1" {
		t.Fatalf("unexpected runs %+v", o.Runs)
	}
	if o.ParcelsDegraded || o.HistoryDegraded {
		t.Fatal("nothing should be degraded")
	}
}

func TestBuildOverviewDegradesIndependently(t *testing.T) {
	s := &stubFleet{
		listParcels: func(ctx context.Context) ([]domain.Parcel, error) {
			return nil, errors.New("stock down")
		},
		listHistory: func(ctx context.Context) ([]domain.Assignment, error) {
			return []domain.Assignment{{RunID: "run-1", ParcelID: "1"}}, nil
		},
	}

	o := BuildOverview(context.Background(), s, s)

	if !o.ParcelsDegraded {
		t.Fatal("expected parcels degraded")
	}
	if o.HistoryDegraded {
		t.Fatal("history must not degrade with the stock")
	}
	if o.ParcelCount != 0 || len(o.Runs) != 1 {
		t.Fatalf("unexpected overview %+v", o)
	}
}
