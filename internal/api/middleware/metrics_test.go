package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/repair-cost/internal/api/middleware"
	"github.com/donaldgifford/repair-cost/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records route template",
			method: http.MethodGet,
			route:  "/api/v1/prices/:code",
			path:   "/api/v1/prices/L21",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"code": c.Param("code")})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records 422 response",
			method: http.MethodPost,
			route:  "/api/v1/estimate",
			path:   "/api/v1/estimate",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusUnprocessableEntity)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/recost",
			path:   "/api/v1/recost",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	healthy := true

	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/readyz", func(c echo.Context) error {
		if healthy {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	serve := func() {
		req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve()
	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.ReadyzUp), 0.01)

	healthy = false
	serve()
	assert.InDelta(t, 0, ptestutil.ToFloat64(metrics.ReadyzUp), 0.01)
}
