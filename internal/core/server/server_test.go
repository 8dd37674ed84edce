package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-admin/internal/core/config"
	"shop-admin/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRoute struct{}

func (pingRoute) Register(r fiber.Router) {
	r.Get("/ping", func(c *fiber.Ctx) error {
		if logger.FromContext(c.UserContext()) == logger.Get() {
			return c.Status(http.StatusInternalServerError).SendString("no request logger")
		}
		return c.SendString("pong")
	})
	r.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
}

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestServer_Middleware verifies the ray id header, the request logger and panic recovery.
func TestServer_Middleware(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{ServerPort: 8080})
	srv.Register(pingRoute{})

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

	resp, err = srv.App.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// TestServer_Health verifies that failing checks degrade the health response.
func TestServer_Health(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{ServerPort: 8080})
	srv.AddHealthCheck("cache", func(ctx context.Context) error { return nil })

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	srv.AddHealthCheck("backend", func(ctx context.Context) error { return errors.New("connection refused") })

	resp, err = srv.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Checks["cache"])
	assert.Equal(t, "connection refused", body.Checks["backend"])
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	srv := New(cfg)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.Shutdown(time.Second)
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
