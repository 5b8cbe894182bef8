package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/dto"
)

const healthCheckTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports whether the backing stores answer within healthCheckTimeout
type HealthChecker struct {
	deps map[string]pinger
}

func NewHealthChecker(infra Infrastructure) *HealthChecker {
	return &HealthChecker{
		deps: map[string]pinger{
			"postgres": infra.Postgres(),
			"redis":    infra.Redis(),
		},
	}
}

// check pings every dependency concurrently and returns the failures by name
func (h *HealthChecker) check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures = make(map[string]string)
	)
	for name, dep := range h.deps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := dep.Ping(ctx); err != nil {
				mu.Lock()
				failures[name] = err.Error()
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return failures
}

func (h *HealthChecker) Handler(c *gin.Context) {
	failures := h.check(c.Request.Context())

	status := make(map[string]string, len(h.deps))
	for name := range h.deps {
		status[name] = "pass"
	}
	for name := range failures {
		status[name] = "fail"
	}

	if len(failures) > 0 {
		c.JSON(http.StatusServiceUnavailable, dto.NewResponse(http.StatusServiceUnavailable,
			gin.H{"status": "fail", "checks": status, "errors": failures}, "Service unavailable"))
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(http.StatusOK,
		gin.H{"status": "pass", "checks": status}, "Service healthy"))
}
