package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Login authenticates the operator against the backend and returns the
// backend session cookie to replay on subsequent calls. The console
// never stores credentials, only the opaque cookie.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", newError(KindInvalidSelection, "email and password are required")
	}

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", classify("login", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/auth/login"), bytes.NewReader(body))
	if err != nil {
		return "", classify("login", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return "", classify("login", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))

	if resp.StatusCode == http.StatusUnauthorized {
		msg := backendMessage(raw)
		if msg == "" {
			msg = "invalid credentials"
		}
		return "", newError(KindAuthRequired, msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classify("login", &statusError{Code: resp.StatusCode, Message: backendMessage(raw)})
	}

	cookie := sessionCookie(resp)
	if cookie == "" {
		return "", newError(KindBackend, "backend login returned no session cookie")
	}

	return cookie, nil
}

// Logout clears the backend session for the cookie carried by ctx.
// Best-effort: the console session dies regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, "logout", http.MethodPost, "/api/auth/logout", struct{}{}, nil)
}

// sessionCookie extracts the name=value pair of the backend's session
// cookie from a login response, dropping attributes like Path and
// HttpOnly that only matter to browsers.
func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name != "" && c.Value != "" {
			return c.Name + "=" + c.Value
		}
	}
	return ""
}
