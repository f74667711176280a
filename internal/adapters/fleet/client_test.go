package fleet

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

// roundTripFunc lets tests stand in for the backend without a listener.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := New("http://fleet.local", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	if _, err := New("   "); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestClientReplaysSessionCookie(t *testing.T) {
	var gotCookie string
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		gotCookie = r.Header.Get("Cookie")
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	ctx := WithSession(context.Background(), "session=abc123")
	if _, err := c.ListParcels(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCookie != "session=abc123" {
		t.Fatalf("expected backend cookie to be replayed, got %q", gotCookie)
	}
}

func TestClientClassifiesTimeout(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, &url.Error{Op: "Post", URL: r.URL.String(), Err: context.DeadlineExceeded}
	})

	_, err := c.RunRouteOptimization(context.Background(), "1")
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindTimeout {
		t.Fatalf("expected timeout kind, got %q", KindOf(err))
	}
}

func TestClientPassesBackendErrorMessageThrough(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusConflict, `{"error":"camion indisponible"}`), nil
	})

	_, err := c.RunRouteOptimization(context.Background(), "1")
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindBackend {
		t.Fatalf("expected backend kind, got %q", KindOf(err))
	}
	if Message(err) != "camion indisponible" {
		t.Fatalf("expected backend message to pass through, got %q", Message(err))
	}
}

func TestLoginCapturesSessionCookie(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		resp := jsonResponse(http.StatusOK, `{"message":"ok"}`)
		resp.Header.Add("Set-Cookie", "session=deadbeef; HttpOnly; Path=/")
		return resp, nil
	})

	cookie, err := c.Login(context.Background(), "admin@viacargo.local", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cookie != "session=deadbeef" {
		t.Fatalf("expected bare name=value cookie, got %q", cookie)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error":"Identifiants invalides"}`), nil
	})

	_, err := c.Login(context.Background(), "admin@viacargo.local", "wrong")
	if KindOf(err) != KindAuthRequired {
		t.Fatalf("expected auth required, got %v", err)
	}
	if Message(err) != "Identifiants invalides" {
		t.Fatalf("expected backend message, got %q", Message(err))
	}
}

func TestLoginWithoutCookieFails(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"message":"ok"}`), nil
	})

	_, err := c.Login(context.Background(), "admin@viacargo.local", "admin123")
	if KindOf(err) != KindBackend {
		t.Fatalf("expected backend kind for missing cookie, got %v", err)
	}
}

func TestUpdateParcelRequiresID(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request should be sent")
		return nil, errors.New("unreachable")
	})

	_, err := c.UpdateParcel(context.Background(), domain.Parcel{ClientName: "no id"})
	if KindOf(err) != KindInvalidSelection {
		t.Fatalf("expected invalid selection, got %v", err)
	}
}
