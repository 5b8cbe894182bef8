package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PrometheusHandler returns a Gin handler for Prometheus metrics
func PrometheusHandler(handler http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if handler != nil {
			handler.ServeHTTP(c.Writer, c.Request)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"statusCode": http.StatusInternalServerError,
				"message":    "metrics handler not initialized",
				"success":    false,
				"errors":     []string{},
			})
		}
	}
}

// Metrics holds the domain counters. A nil *Metrics records nothing.
type Metrics struct {
	registrations metric.Int64Counter
	logins        metric.Int64Counter
	videoViews    metric.Int64Counter
	uploads       metric.Int64Counter
	rateLimited   metric.Int64Counter
}

// NewMetrics creates the domain counters on meter
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)

	if m.registrations, err = meter.Int64Counter("vidverse.users.registrations",
		metric.WithDescription("Registration attempts that issued a verification code")); err != nil {
		return nil, fmt.Errorf("failed to create registrations counter: %w", err)
	}
	if m.logins, err = meter.Int64Counter("vidverse.auth.logins",
		metric.WithDescription("Login attempts by outcome")); err != nil {
		return nil, fmt.Errorf("failed to create logins counter: %w", err)
	}
	if m.videoViews, err = meter.Int64Counter("vidverse.videos.views",
		metric.WithDescription("First-time video views")); err != nil {
		return nil, fmt.Errorf("failed to create views counter: %w", err)
	}
	if m.uploads, err = meter.Int64Counter("vidverse.media.uploads",
		metric.WithDescription("Media uploads by folder and outcome")); err != nil {
		return nil, fmt.Errorf("failed to create uploads counter: %w", err)
	}
	if m.rateLimited, err = meter.Int64Counter("vidverse.http.rate_limited",
		metric.WithDescription("Requests rejected by the rate limiter")); err != nil {
		return nil, fmt.Errorf("failed to create rate limit counter: %w", err)
	}

	return &m, nil
}

func (m *Metrics) Registration(ctx context.Context, pending bool) {
	if m == nil {
		return
	}
	m.registrations.Add(ctx, 1, metric.WithAttributes(attribute.Bool("pending_update", pending)))
}

func (m *Metrics) Login(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) VideoView(ctx context.Context) {
	if m == nil {
		return
	}
	m.videoViews.Add(ctx, 1)
}

func (m *Metrics) Upload(ctx context.Context, folder string, err error) {
	if m == nil {
		return
	}
	m.uploads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("folder", folder),
		attribute.Bool("success", err == nil),
	))
}

func (m *Metrics) RateLimited(ctx context.Context, route string) {
	if m == nil {
		return
	}
	m.rateLimited.Add(ctx, 1, metric.WithAttributes(attribute.String("route", route)))
}
