package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/workout-api/internal/config"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthHandler(checks ...healthCheck) *HealthHandler {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
	h := NewHealthHandler(s)
	h.checks = checks
	return h
}

func runHealth(t *testing.T, h *HealthHandler) (int, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.CheckHealth(c))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealth_AllHealthy(t *testing.T) {
	h := newHealthHandler(healthCheck{
		name: "database",
		ping: func(ctx context.Context) error { return nil },
	})

	status, body := runHealth(t, h)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "healthy", checks["database"].(map[string]interface{})["status"])
}

func TestCheckHealth_FailingDependency(t *testing.T) {
	h := newHealthHandler(
		healthCheck{name: "database", ping: func(ctx context.Context) error { return nil }},
		healthCheck{name: "redis", ping: func(ctx context.Context) error { return errors.New("dial tcp: refused") }},
	)

	status, body := runHealth(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", body["status"])
	redis := body["checks"].(map[string]interface{})["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redis["status"])
	assert.Equal(t, "dial tcp: refused", redis["error"])
}

func TestCheckHealth_PingGetsDeadline(t *testing.T) {
	h := newHealthHandler(healthCheck{
		name: "database",
		ping: func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		},
	})

	status, _ := runHealth(t, h)
	assert.Equal(t, http.StatusOK, status)
}

func TestNewHealthHandler_SkipsMissingDependencies(t *testing.T) {
	h := newHealthHandler()
	assert.Empty(t, h.checks)

	status, body := runHealth(t, h)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["checks"])
}
