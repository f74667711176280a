package services

import (
	"testing"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

func TestGroupRunsByRunID(t *testing.T) {
	assignments := []domain.Assignment{
		{ID: "1", RunID: "run-2", ExecutedAt: "2026-08-31T10:00:00", TruckID: "1", ParcelID: "10", WeightKg: 10},
		{ID: "2", RunID: "run-2", ExecutedAt: "2026-08-31T10:00:00", TruckID: "1", ParcelID: "11", WeightKg: 25},
		{ID: "3", RunID: "run-2", ExecutedAt: "2026-08-31T10:00:00", TruckID: "2", ParcelID: "12", WeightKg: 100},
		{ID: "4", RunID: "run-1", ExecutedAt: "2026-08-30T09:00:00", TruckID: "1", ParcelID: "13", WeightKg: 40},
	}

	runs := GroupRuns(assignments)

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	// First-seen order is preserved: the backend emits newest first.
	newest := runs[0]
	if newest.Key != "run-2" || newest.RunID != "run-2" {
		t.Fatalf("unexpected first run %+v", newest)
	}
	if newest.ParcelCount != 3 {
		t.Fatalf("expected 3 parcels, got %d", newest.ParcelCount)
	}
	if newest.TotalWeightKg != 135 {
		t.Fatalf("expected 135kg, got %v", newest.TotalWeightKg)
	}
	if len(newest.TruckIDs) != 2 {
		t.Fatalf("expected 2 distinct trucks, got %v", newest.TruckIDs)
	}
	if len(newest.Assignments) != 3 {
		t.Fatalf("expected assignments kept, got %d", len(newest.Assignments))
	}
}

func TestGroupRunsSurrogateKeys(t *testing.T) {
	assignments := []domain.Assignment{
		{ID: "1", ExecutedAt: "2026-08-29T08:00:00", ParcelID: "10"},
		{ID: "2", ExecutedAt: "2026-08-29T08:00:00", ParcelID: "11"},
		{ID: "3", ParcelID: "12"},
	}

	runs := GroupRuns(assignments)

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Key != "norun::2026-08-29T08:00:00" {
		t.Fatalf("unexpected surrogate key %q", runs[0].Key)
	}
	if runs[1].Key != "norun::unknown" {
		t.Fatalf("unexpected fallback key %q", runs[1].Key)
	}
}

func TestGroupRunsEmpty(t *testing.T) {
	if runs := GroupRuns(nil); len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}

func TestToggleExpandedRun(t *testing.T) {
	if got := ToggleExpandedRun("", "run-1"); got != "run-1" {
		t.Fatalf("expected expansion, got %q", got)
	}
	if got := ToggleExpandedRun("run-1", "run-1"); got != "" {
		t.Fatalf("expected collapse on same key, got %q", got)
	}
	if got := ToggleExpandedRun("run-1", "run-2"); got != "run-2" {
		t.Fatalf("expected expansion to move, got %q", got)
	}
	if got := ToggleExpandedRun("run-1", ""); got != "" {
		t.Fatalf("expected empty key to collapse, got %q", got)
	}
}
