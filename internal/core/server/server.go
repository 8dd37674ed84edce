package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shop-admin/internal/core/config"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/core/respond"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "shop-admin/docs/swagger"
)

// Route registers a feature's handlers on the router.
type Route interface {
	Register(r fiber.Router)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// checks are run by GET /health.
	checks map[string]HealthCheck
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "shop-admin",
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Use(requestLogger)

	app.Get("/swagger/*", swagger.HandlerDefault)

	s := &Server{
		App:    app,
		cfg:    cfg,
		checks: map[string]HealthCheck{},
	}
	app.Get("/health", s.health)

	return s
}

// requestLogger stores a logger carrying the ray id in the request context.
func requestLogger(c *fiber.Ctx) error {
	l := logger.Get().With(zap.String("ray_id", respond.RayID(c)))
	c.SetUserContext(logger.WithContext(c.UserContext(), l))
	return c.Next()
}

// Register mounts every route on the app.
func (s *Server) Register(routes ...Route) {
	for _, r := range routes {
		r.Register(s.App)
	}
}

// AddHealthCheck adds a named dependency check to GET /health.
func (s *Server) AddHealthCheck(name string, check HealthCheck) {
	s.checks[name] = check
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// health handles GET /health.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} server.HealthResponse
// @Failure 503 {object} server.HealthResponse
// @Router /health [get]
func (s *Server) health(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK

	for name, check := range s.checks {
		if err := check(c.UserContext()); err != nil {
			logger.FromContext(c.UserContext()).Warn("Health check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.Status(status).JSON(resp)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	logger.Get().Info("Shutting down server")
	return s.App.ShutdownWithTimeout(timeout)
}
