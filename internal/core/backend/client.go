// Package backend is the JSON client for the e-commerce REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shop-admin/internal/core/httpclient"
)

// ErrMissingToken is returned by operations that refuse to run without a bearer token.
var ErrMissingToken = errors.New("backend token not found")

// APIError is a non-2xx response from the backend.
type APIError struct {
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int
	// Message is the backend's "message" field, or the raw body when absent.
	Message string
	// Body is the raw response body.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client performs JSON requests against the backend base URL.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  httpclient.TokenSource
}

// NewClient creates a Client. tokens is consulted only for the explicit token
// guard; the Authorization header itself is set by the httpClient transport.
func NewClient(baseURL string, httpClient *http.Client, tokens httpclient.TokenSource) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
}

// Get decodes the response of GET path into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch sends body as JSON and decodes the response into out.
// Updates are never sent anonymously: a missing token fails before the request.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	if err := c.RequireToken(ctx); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues DELETE path and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// RequireToken fails with ErrMissingToken when the token store is empty.
func (c *Client) RequireToken(ctx context.Context) error {
	if c.tokens == nil {
		return ErrMissingToken
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if token == "" {
		return ErrMissingToken
	}
	return nil
}

// HealthCheck verifies that the backend is reachable by listing products.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/product", nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	body := strings.TrimSpace(string(raw))
	apiErr := &APIError{StatusCode: status, Message: body, Body: body}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
