package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/procurement-cms/internal/middleware"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/deppfellow/procurement-cms/internal/storage"
	"github.com/labstack/echo/v4"
)

// dependencyCheck is one entry of the health report. A failing required
// check turns the whole report unhealthy; an optional one only degrades it.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// storageProbe reads a key that never exists. Not found means the store
// answered.
func storageProbe(store storage.Store) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, body, err := store.Get(ctx, "healthcheck/probe")
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if body != nil {
			body.Close()
		}
		return err
	}
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: 5 * time.Second,
	}

	cfg := s.Config.Observability
	if cfg != nil && cfg.HealthChecks.Timeout > 0 {
		h.timeout = cfg.HealthChecks.Timeout
	}
	enabled := func(name string) bool { return cfg == nil || cfg.HasCheck(name) }

	if s.DB != nil && enabled("database") {
		h.checks = append(h.checks, dependencyCheck{name: "database", required: true, ping: s.DB.Pool.Ping})
	}
	if s.Redis != nil && enabled("redis") {
		// Only background jobs need Redis; the API keeps working without it.
		h.checks = append(h.checks, dependencyCheck{name: "redis", ping: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}})
	}
	if s.Storage != nil && enabled("storage") {
		h.checks = append(h.checks, dependencyCheck{name: "storage", required: true, ping: storageProbe(s.Storage)})
	}
	return h
}

// CheckHealth returns 200 while every required dependency answers and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	status := "healthy"
	checks := make(map[string]interface{}, len(h.checks)+1)

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		result := map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
		if err != nil {
			result["status"] = "unhealthy"
			result["error"] = err.Error()

			if check.required {
				status = "unhealthy"
			} else if status == "healthy" {
				status = "degraded"
			}

			logger.Error().Err(err).Str("check", check.name).Dur("response_time", time.Since(checkStart)).Msg("health check failed")
			h.recordFailure(check.name, err, time.Since(checkStart))
		}
		checks[check.name] = result
	}

	response := map[string]interface{}{
		"status":      status,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
	}

	return c.JSON(code, response)
}

func (h *HealthHandler) recordFailure(check string, err error, took time.Duration) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": took.Milliseconds(),
		"error_message":    err.Error(),
	})
}
