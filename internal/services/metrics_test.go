package services

import (
	"math"
	"testing"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

func TestTotalWeight(t *testing.T) {
	parcels := []domain.Parcel{
		{ID: "1", WeightKg: 120.5},
		{ID: "2", WeightKg: 640},
		{ID: "3", WeightKg: 85},
	}
	if got := TotalWeight(parcels); got != 845.5 {
		t.Fatalf("expected 845.5, got %v", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}

func TestUtilization(t *testing.T) {
	if got := Utilization(35, 30); math.Abs(got-116.666) > 0.001 {
		t.Fatalf("expected ~116.666, got %v", got)
	}
	if got := Utilization(10, 0); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for zero capacity, got %v", got)
	}
}

func TestIsOverloaded(t *testing.T) {
	if IsOverloaded(100) {
		t.Fatal("exactly 100% is not overloaded")
	}
	if !IsOverloaded(100.01) {
		t.Fatal("expected overload above 100%")
	}
	if !IsOverloaded(math.Inf(1)) {
		t.Fatal("undefined utilization counts as overloaded")
	}
}

func TestAnnotateLoadPlan(t *testing.T) {
	plan := domain.LoadPlan{
		Trucks: []domain.TruckLoad{
			{TruckID: "1", ParcelIDs: []string{"10", "11"}},
			{TruckID: "2", ParcelIDs: []string{"12"}},
			{TruckID: "ghost", ParcelIDs: []string{"13"}},
		},
	}
	parcels := []domain.Parcel{
		{ID: "10", WeightKg: 10},
		{ID: "11", WeightKg: 25},
		{ID: "12", WeightKg: 100},
	}
	trucks := []domain.Truck{
		{ID: "1", CapacityKg: 30},
		{ID: "2", CapacityKg: 200},
	}

	AnnotateLoadPlan(&plan, parcels, trucks)

	first := plan.Trucks[0]
	if first.LoadedWeightKg != 35 {
		t.Fatalf("expected 35kg loaded, got %v", first.LoadedWeightKg)
	}
	if first.UtilizationPct == nil || math.Abs(*first.UtilizationPct-116.666) > 0.001 {
		t.Fatalf("unexpected utilization %v", first.UtilizationPct)
	}
	if !first.Overloaded {
		t.Fatal("expected overload flag on 35/30")
	}

	second := plan.Trucks[1]
	if second.Overloaded {
		t.Fatal("50% utilization must not be overloaded")
	}

	// Unknown truck has no capacity: utilization is undefined, the
	// overload flag still fires, and the field is omitted rather than Inf.
	ghost := plan.Trucks[2]
	if ghost.UtilizationPct != nil {
		t.Fatalf("expected nil utilization for unknown truck, got %v", *ghost.UtilizationPct)
	}
	if !ghost.Overloaded {
		t.Fatal("expected overload for unknown truck capacity")
	}
}
