package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const responseBodyLimit int64 = 1 << 20

// Client talks to the fleet backend (the system of record for parcels,
// trucks, assignments and the two optimization services). It owns no
// data: every call re-fetches, normalizes through the schema adapter,
// and hands transient copies to the caller.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client (tests inject a
// stub transport through this).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.session = hc
		}
	}
}

// WithTimeout overrides the transport default ceiling applied to every
// call that has no explicit per-call bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.session.Timeout = d
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("fleet backend base URL is empty")
	}

	c := &Client{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: trimmed,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

type sessionKey struct{}

// WithSession attaches the operator's backend session cookie to the
// context. Calls made with the returned context replay the cookie so
// the backend sees the logged-in admin.
func WithSession(ctx context.Context, cookie string) context.Context {
	if strings.TrimSpace(cookie) == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, cookie)
}

func sessionFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey{}).(string); ok {
		return v
	}
	return ""
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie := sessionFrom(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	return req, nil
}

// do performs a single attempt (no retry: resolution chains already
// probe alternatives, and optimization calls must not be re-issued
// behind the caller's back). Non-2xx responses become statusError with
// the backend's error payload extracted when present.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{Code: resp.StatusCode, Message: backendMessage(raw)}
	}

	return raw, nil
}

// backendMessage pulls the message out of the backend's {"error": ...}
// payload shape. Anything else yields an empty string and the caller
// falls back to a generic message.
func backendMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}

// call issues one request against a fixed endpoint and decodes the
// response into out (out may be nil for calls without a useful body).
func (c *Client) call(ctx context.Context, op, method, path string, payload any, out any) error {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return classify(op, fmt.Errorf("encode payload: %w", err))
		}
		body = b
	}

	req, err := c.newRequest(ctx, method, c.url(path), body)
	if err != nil {
		return classify(op, err)
	}

	raw, err := c.do(req)
	if err != nil {
		return classify(op, err)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return classify(op, fmt.Errorf("decode response: %w", err))
	}

	return nil
}
