// Package rest wraps outbound calls to the portfolio backend. Responses are
// standardized as { data, error }: the wrapper unwraps the envelope and
// normalizes every transport and server failure into a single errs.Error, so
// callers see either a data payload or one displayable error, never both.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sivadev/folio/internal/errs"
	"github.com/sivadev/folio/internal/logging"
)

// NoResponseMessage is shown when the request never reached the server.
const NoResponseMessage = "No response from server. Check connectivity / CORS."

// Client performs JSON requests against a fixed base URL. It holds no
// per-request state and is safe to share across form instances.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger enables diagnostic logging of failures. Logging is best-effort
// and never alters the returned error.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the unwrapped data payload.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body and returns the unwrapped
// data payload.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(method, fullURL, 0, errs.Transport(err.Error(), err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, c.fail(method, fullURL, 0, errs.Transport(err.Error(), err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Nothing came back: connectivity, DNS, timeout, CORS preflight.
		return nil, c.fail(method, fullURL, 0, errs.Transport(NoResponseMessage, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(method, fullURL, resp.StatusCode, errs.Transport(NoResponseMessage, err))
	}

	if c.logger != nil {
		c.logger.LogAPIRequest(method, fullURL, requestID, resp.StatusCode, time.Since(start).String())
	}

	data, err := unwrap(resp.StatusCode, raw)
	if err != nil {
		return nil, c.fail(method, fullURL, resp.StatusCode, err)
	}
	return data, nil
}

// fail logs the normalized error before handing it back to the caller.
func (c *Client) fail(method, url string, status int, err error) error {
	if c.logger != nil {
		c.logger.LogAPIError(method, url, status, err)
	}
	return err
}

// unwrap applies the envelope convention to a response body:
//   - body is an object with a falsy "error" key: return its "data" value
//   - body carries a truthy "error" (any status): server error, message
//     extracted from it
//   - body lacks the envelope shape: return it as-is on 2xx (compatibility
//     fallback for endpoints that predate the envelope), "HTTP <status>"
//     otherwise
func unwrap(status int, raw []byte) (json.RawMessage, error) {
	var env map[string]json.RawMessage
	if json.Unmarshal(raw, &env) == nil && env != nil {
		if errRaw, ok := env["error"]; ok {
			if truthy(errRaw) {
				return nil, errs.Server(status, errorMessage(status, errRaw))
			}
			if status >= 200 && status < 300 {
				data, ok := env["data"]
				if !ok {
					data = json.RawMessage("null")
				}
				return data, nil
			}
			return nil, errs.Server(status, fmt.Sprintf("HTTP %d", status))
		}
	}

	if status >= 200 && status < 300 {
		return json.RawMessage(raw), nil
	}
	return nil, errs.Server(status, fmt.Sprintf("HTTP %d", status))
}

// truthy mirrors the loose check the envelope convention was designed
// around: null, empty string, zero and false do not count as errors.
func truthy(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	switch s {
	case "", "null", `""`, "0", "false":
		return false
	}
	return true
}

// errorMessage extracts a displayable message from an envelope error value:
// a structured {code, message} object's message, the string itself, or the
// stringified value as a last resort.
func errorMessage(status int, raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil && structured.Message != "" {
		return structured.Message
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil && buf.Len() > 0 {
		return buf.String()
	}
	return fmt.Sprintf("HTTP %d", status)
}
