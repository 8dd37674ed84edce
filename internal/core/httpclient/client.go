package httpclient

import (
	"context"
	"net/http"
	"time"

	"shop-admin/internal/core/logger"
	"shop-admin/internal/core/proxy"

	"go.uber.org/zap"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request is sent without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	l := logger.FromContext(req.Context())

	l.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		l.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	l.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// BearerRoundTripper sets the Authorization header from a TokenSource.
type BearerRoundTripper struct {
	// Tokens provides the current token; nil disables the header.
	Tokens TokenSource
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip attaches the bearer token, unless the caller already set one.
func (brt *BearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if brt.Tokens == nil || req.Header.Get("Authorization") != "" {
		return brt.Proxied.RoundTrip(req)
	}

	token, err := brt.Tokens.Token(req.Context())
	if err != nil {
		return nil, err
	}
	if token == "" {
		return brt.Proxied.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return brt.Proxied.RoundTrip(clone)
}

// NewClient returns an http.Client that injects bearer tokens and logs every call.
func NewClient(timeout time.Duration, p proxy.Settings, tokens TokenSource) *http.Client {
	return &http.Client{
		Transport: &BearerRoundTripper{
			Tokens: tokens,
			Proxied: &LoggingRoundTripper{
				Proxied: p.Transport(),
			},
		},
		Timeout: timeout,
	}
}
