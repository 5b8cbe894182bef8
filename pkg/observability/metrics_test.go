package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.Registration(ctx, false)
	m.Login(ctx, "success")
	m.Login(ctx, "invalid_password")
	m.VideoView(ctx)
	m.Upload(ctx, "videos", nil)
	m.Upload(ctx, "videos", errors.New("s3 down"))
	m.RateLimited(ctx, "/api/v1/users/login")

	totals := collect(t, reader)
	assert.Equal(t, int64(1), totals["vidverse.users.registrations"])
	assert.Equal(t, int64(2), totals["vidverse.auth.logins"])
	assert.Equal(t, int64(1), totals["vidverse.videos.views"])
	assert.Equal(t, int64(2), totals["vidverse.media.uploads"])
	assert.Equal(t, int64(1), totals["vidverse.http.rate_limited"])
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Registration(context.Background(), true)
		m.VideoView(context.Background())
	})
}

func TestPrometheusHandler_NotInitialized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/metrics", nil)

	PrometheusHandler(nil)(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestInitTelemetry_ServesMetrics(t *testing.T) {
	mp, handler, err := InitTelemetry("vidverse-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := NewMetrics(mp.Meter("vidverse-test"))
	require.NoError(t, err)
	metrics.Login(context.Background(), "success")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
	assert.Contains(t, w.Body.String(), "vidverse_auth_logins")
}

func TestInitLogger(t *testing.T) {
	for _, env := range []string{"production", "development", "test"} {
		logger, err := InitLogger(env)
		require.NoError(t, err, env)
		assert.NotNil(t, logger, env)
	}
}
