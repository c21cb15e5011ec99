package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// PlaceholderMarker marks a configuration value the operator has not filled
// in yet (e.g. "https://REPLACE_WITH_YOUR_ENDPOINT/").
const PlaceholderMarker = "REPLACE_WITH"

var (
	// ErrNotConfigured is returned before any network traffic when the
	// endpoint URL is empty or still a placeholder.
	ErrNotConfigured = errors.New("rpc url not configured")
	// ErrTransport wraps non-2xx HTTP responses.
	ErrTransport = errors.New("rpc fetch failed")
	// ErrProtocol wraps responses that carry a JSON-RPC error member.
	ErrProtocol = errors.New("rpc error")
)

// Caller is the subset of Client the dashboard depends on.
type Caller interface {
	Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
}

// Client sends JSON-RPC 2.0 requests to a single endpoint.
//
// There is deliberately no retry loop and no timeout beyond what the
// underlying http.Client applies: a failed call is reported to the caller,
// and the next poll simply tries again.
type Client struct {
	url        string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) URL() string { return c.url }

// IsPlaceholder reports whether a configured value is unset or still
// carries the placeholder marker.
func IsPlaceholder(v string) bool {
	return strings.TrimSpace(v) == "" || strings.Contains(v, PlaceholderMarker)
}

// Call executes one JSON-RPC request (id 1) and returns the raw result.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if IsPlaceholder(c.url) {
		return nil, ErrNotConfigured
	}

	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrTransport, httpResp.StatusCode)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	if resp.hasError() {
		return nil, fmt.Errorf("%w: %s", ErrProtocol, compact(resp.Error))
	}

	return resp.Result, nil
}

// compact strips insignificant whitespace so error payloads stay on one line.
func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
