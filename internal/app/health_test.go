package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err   error
	delay time.Duration
}

func (f fakePinger) Ping(ctx context.Context) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func serveHealth(t *testing.T, h *HealthChecker) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Data
}

func TestHealthChecker(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		h := &HealthChecker{deps: map[string]pinger{
			"postgres": fakePinger{},
			"redis":    fakePinger{},
		}}

		status, data := serveHealth(t, h)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "pass", data["status"])
	})

	t.Run("one dependency down", func(t *testing.T) {
		h := &HealthChecker{deps: map[string]pinger{
			"postgres": fakePinger{},
			"redis":    fakePinger{err: errors.New("connection refused")},
		}}

		status, data := serveHealth(t, h)
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, map[string]any{"postgres": "pass", "redis": "fail"}, data["checks"])
		assert.Equal(t, map[string]any{"redis": "connection refused"}, data["errors"])
	})
}

func TestHealthChecker_Timeout(t *testing.T) {
	h := &HealthChecker{deps: map[string]pinger{
		"postgres": fakePinger{delay: time.Minute},
	}}

	start := time.Now()
	failures := h.check(context.Background())
	assert.Less(t, time.Since(start), healthCheckTimeout+time.Second)
	assert.Contains(t, failures, "postgres")
}
