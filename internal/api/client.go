// Package api implements the REST client for the quiz-generation service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPDoer abstracts HTTP clients used by the API client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource yields the bearer token attached to authenticated requests.
// An empty token means unauthenticated; the Authorization header is then
// omitted entirely.
type TokenSource interface {
	Token() string
}

// Client talks to the quiz service over its REST API.
type Client struct {
	BaseURL string
	HTTP    HTTPDoer
	Tokens  TokenSource
}

// New constructs a client for the given base URL. A nil doer falls back to
// http.DefaultClient; a nil token source sends unauthenticated requests.
func New(baseURL string, tokens TokenSource, client HTTPDoer) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    client,
		Tokens:  tokens,
	}, nil
}

// token snapshots the bearer token at dispatch time.
func (c *Client) token() string {
	if c.Tokens == nil {
		return ""
	}
	return c.Tokens.Token()
}

// do executes a JSON request against a service path and decodes a 2xx
// response body into out when out is non-nil. Non-2xx responses become
// *Error values carrying any detail message from the body.
func (c *Client) do(ctx context.Context, method, path string, payload any, authenticated bool, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
