package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/vamoose/internal/middleware"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultCheckTimeout = 5 * time.Second

// HealthHandler reports whether the service and its configured
// dependencies are reachable.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 with the check results, or 503 when any
// configured check fails.
//
// The job broker (redis) is probed only when enabled in
// observability.health_checks; validation and trip planning work without
// it, so operators choose whether its absence marks the service unhealthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	obs := h.server.Config.Observability

	if obs != nil && obs.HealthCheckEnabled("redis") {
		if !h.checkRedis(c.Request().Context(), checks, &logger) {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordEvent(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		h.recordEvent(map[string]any{
			"check_type":    "response",
			"operation":     "health_check",
			"error_type":    "json_response_error",
			"error_message": err.Error(),
		})

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) checkRedis(parent context.Context, checks map[string]any, logger *zerolog.Logger) bool {
	if h.server.Redis == nil {
		checks["redis"] = map[string]any{
			"status": "unhealthy",
			"error":  "redis client not configured",
		}
		return false
	}

	timeout := h.server.Config.Observability.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	redisStart := time.Now()

	if err := h.server.Redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = map[string]any{
			"status":        "unhealthy",
			"response_time": time.Since(redisStart).String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(redisStart)).
			Msg("redis health check failed")

		h.recordEvent(map[string]any{
			"check_type":       "redis",
			"operation":        "health_check",
			"error_type":       "redis_unhealthy",
			"response_time_ms": time.Since(redisStart).Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks["redis"] = map[string]any{
		"status":        "healthy",
		"response_time": time.Since(redisStart).String(),
	}

	logger.Debug().
		Dur("response_time", time.Since(redisStart)).
		Msg("redis health check passed")
	return true
}

func (h *HealthHandler) recordEvent(params map[string]any) {
	if h.server.LoggerService == nil {
		return
	}
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", params)
	}
}
