package fleet

import (
	"context"
	"net/http"
	"testing"
)

func TestResolveFallsThroughToLaterCandidate(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/api/packages" {
			return jsonResponse(http.StatusOK, `[{"id":1,"client_name":"Legacy"}]`), nil
		}
		return jsonResponse(http.StatusNotFound, `{"error":"not found"}`), nil
	})

	parcels, err := c.ListParcels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parcels) != 1 || parcels[0].ClientName != "Legacy" {
		t.Fatalf("unexpected parcels %+v", parcels)
	}

	want := []string{"/api/colis", "/api/colis/", "/api/packages"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d probes, got %v", len(want), paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("probe %d = %q, want %q", i, paths[i], p)
		}
	}
}

func TestResolveStopsAtFirstSuccess(t *testing.T) {
	var calls int
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	if _, err := c.ListTrucks(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestResolveDoesNotCacheWinner(t *testing.T) {
	var probes int
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		probes++
		if r.URL.Path == "/api/packages" {
			return jsonResponse(http.StatusOK, `[]`), nil
		}
		return jsonResponse(http.StatusNotFound, `{}`), nil
	})

	for i := 0; i < 2; i++ {
		if _, err := c.ListParcels(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Both calls walk the full chain again.
	if probes != 6 {
		t.Fatalf("expected 6 probes across two calls, got %d", probes)
	}
}

func TestResolveUnauthorizedShortCircuits(t *testing.T) {
	var calls int
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusUnauthorized, `{"error":"Non authentifie"}`), nil
	})

	_, err := c.ListParcels(context.Background())
	if KindOf(err) != KindAuthRequired {
		t.Fatalf("expected auth required, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected chain to stop after unauthorized, got %d calls", calls)
	}
}

func TestResolveAllCandidatesFail(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `{"error":"boom"}`), nil
	})

	_, err := c.ListTrucks(context.Background())
	if KindOf(err) != KindResourceUnavailable {
		t.Fatalf("expected resource unavailable, got %v", err)
	}
}
