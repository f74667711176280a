package fleet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure of the fleet backend boundary. Every error
// leaving this package carries exactly one kind; raw transport or
// decoding errors never reach the handlers unclassified.
type Kind string

const (
	// Every candidate endpoint in a resolution chain failed.
	KindResourceUnavailable Kind = "RESOURCE_UNAVAILABLE"
	// An optimization call exceeded its time bound.
	KindTimeout Kind = "TIMEOUT"
	// A local precondition failed; nothing was sent to the network.
	KindInvalidSelection Kind = "INVALID_SELECTION"
	// The backend rejected the session; the operator must log in again.
	KindAuthRequired Kind = "AUTHENTICATION_REQUIRED"
	// Any other backend failure (non-2xx, transport, malformed payload).
	KindBackend Kind = "BACKEND_ERROR"
)

// Error is the classified form of a backend failure.
type Error struct {
	ErrKind Kind
	Msg     string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.ErrKind, e.Msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind { return e.ErrKind }

func newError(kind Kind, msg string) *Error {
	return &Error{ErrKind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{ErrKind: kind, Msg: msg, cause: cause}
}

// KindOf extracts the classification from err, falling back to
// KindBackend for anything that escaped classification.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.ErrKind
	}
	return KindBackend
}

// Message returns the operator-facing message for err. Backend error
// payloads pass through; everything else gets a generic fallback.
func Message(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Msg != "" {
		return fe.Msg
	}
	return "backend request failed"
}

// HTTPStatus maps a failure kind to the status the console API answers with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindResourceUnavailable:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindInvalidSelection:
		return http.StatusBadRequest
	case KindAuthRequired:
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// statusError carries a non-2xx backend response before classification.
type statusError struct {
	Code    int
	Message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Code, e.Message)
}

// classify converts a transport-level failure into the taxonomy.
// Context deadline hits become Timeout; unauthorized responses become
// AuthRequired; non-2xx responses pass the backend's own message
// through when it sent one.
func classify(op string, err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return wrapError(KindTimeout, op+" timed out", err)
	}

	var se *statusError
	if errors.As(err, &se) {
		if se.Code == http.StatusUnauthorized {
			return wrapError(KindAuthRequired, "authentication required", err)
		}
		msg := se.Message
		if msg == "" {
			msg = op + " failed"
		}
		return wrapError(KindBackend, msg, err)
	}

	return wrapError(KindBackend, op+" failed", err)
}
