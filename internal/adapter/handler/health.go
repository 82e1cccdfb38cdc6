package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck probes one dependency and returns optional details
type HealthCheck func(ctx context.Context) (map[string]interface{}, error)

// Health reports service health including its dependencies
type Health struct {
	environment string
	checks      map[string]HealthCheck
	logger      *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(environment string, checks map[string]HealthCheck, logger *zap.Logger) *Health {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Health{environment: environment, checks: checks, logger: logger}
}

type checkResult struct {
	Status  string                 `json:"status"`
	Error   string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Check handles GET /health. A failing dependency degrades the status but the
// endpoint still answers 200, since the page itself keeps working.
func (h *Health) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	results := make(map[string]checkResult, len(names))
	for _, name := range names {
		details, err := h.checks[name](ctx)
		if err != nil {
			status = "degraded"
			results[name] = checkResult{Status: "down", Error: err.Error()}
			h.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			continue
		}
		results[name] = checkResult{Status: "up", Details: details}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      status,
		"environment": h.environment,
		"time":        time.Now().Format(time.RFC3339),
		"checks":      results,
	})
}
