package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/adapters/fleet"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// SessionCookieName is the console's own cookie; it carries only the
// opaque token, never the backend credential.
const SessionCookieName = "viacargo_session"

type sessionCtxKey struct{}

// WithSession stores the authenticated console session on the context.
func WithSession(ctx context.Context, s ports.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom returns the console session placed by the auth middleware.
func SessionFrom(ctx context.Context) (ports.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(ports.Session)
	return s, ok
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Warn().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("encode response failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeFailure renders a classified backend failure with its kind so
// the UI can distinguish a retryable outage from a required re-login.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	kind := fleet.KindOf(err)
	writeJSON(w, r, fleet.HTTPStatus(kind), map[string]string{
		"error": fleet.Message(err),
		"kind":  string(kind),
	})
}

// decodeBody decodes a single JSON object request body.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
