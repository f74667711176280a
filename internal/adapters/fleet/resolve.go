package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Candidate endpoint spellings for the two resources whose paths have
// shifted across backend revisions. Order matters: the current contract
// comes first, historical spellings after it. Declared once here so no
// call site grows its own probing logic.
var (
	parcelEndpoints = []string{"/api/colis", "/api/colis/", "/api/packages"}
	truckEndpoints  = []string{"/api/camions", "/api/camions/", "/api/trucks"}
)

// resolve tries each candidate path in declared order with a single
// attempt per candidate and returns the first successful response
// together with the path that answered. Candidates after the winning
// one are never contacted. Nothing is cached between calls: the next
// invocation re-probes from the top, trading latency for resilience
// against the backend renaming a resource between two requests.
//
// An unauthorized response short-circuits the chain as AuthRequired,
// since trying another spelling cannot fix a missing login. If every
// candidate fails, the chain fails as ResourceUnavailable carrying the
// last error.
func (c *Client) resolve(ctx context.Context, op string, candidates []string) ([]byte, string, error) {
	if len(candidates) == 0 {
		return nil, "", newError(KindResourceUnavailable, op+": no candidate endpoints declared")
	}

	var lastErr error
	for _, path := range candidates {
		req, err := c.newRequest(ctx, http.MethodGet, c.url(path), nil)
		if err != nil {
			lastErr = err
			continue
		}

		raw, err := c.do(req)
		if err == nil {
			return raw, path, nil
		}

		var se *statusError
		if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
			return nil, "", wrapError(KindAuthRequired, "authentication required", err)
		}

		lastErr = err
	}

	return nil, "", wrapError(KindResourceUnavailable, op+": every known endpoint failed", lastErr)
}

// resolveList resolves a candidate chain and decodes the winning
// response as a JSON array of raw records.
func (c *Client) resolveList(ctx context.Context, op string, candidates []string) ([]map[string]any, error) {
	raw, _, err := c.resolve(ctx, op, candidates)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, classify(op, fmt.Errorf("decode response: %w", err))
	}

	return records, nil
}
