package rexec

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
)

// maxErrorBodySize limits the size of error response bodies read from
// the server. 4KB is sufficient for most error messages while keeping a
// safety limit against misconfigured servers.
const maxErrorBodySize = 4096

// endpoint builds the absolute URL for an API endpoint, preserving any
// base path in the workspace URL.
func (c *Client) endpoint(parts ...string) *url.URL {
	u := *c.apiBase
	u.Path = path.Join(append([]string{u.Path}, parts...)...)
	return &u
}

// postJSON sends an authenticated POST with a JSON body and decodes the
// JSON response into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, u *url.URL, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return newError("REQUEST_FAILED", "failed to encode request body", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return newError("REQUEST_FAILED", "failed to create request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// getJSON sends an authenticated GET with query parameters and decodes
// the JSON response into out when out is non-nil.
func (c *Client) getJSON(ctx context.Context, u *url.URL, query url.Values, out any) error {
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return newError("REQUEST_FAILED", "failed to create request", 0, err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err, "request to "+req.URL.Path+" failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return apiError(resp.StatusCode, body)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newError("INVALID_RESPONSE", "failed to decode response body", resp.StatusCode, err)
	}
	return nil
}
