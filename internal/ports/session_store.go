package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound reports a missing or expired console session.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state of one logged-in console operator.
// BackendCookie is the fleet backend's own session cookie, replayed on
// every backend call made on the operator's behalf. Page and
// ExpandedRun are per-operator view state (active page, which history
// run is currently expanded).
type Session struct {
	Token         string `json:"token"`
	Email         string `json:"email"`
	BackendCookie string `json:"backend_cookie"`
	Page          string `json:"page"`
	ExpandedRun   string `json:"expanded_run"`
}

// Port: a boundary for storing console sessions with a TTL.
type SessionStore interface {
	Put(ctx context.Context, s Session) error
	// Get returns ErrSessionNotFound when the token is unknown or expired.
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
