package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()

	// Fresh registry per test avoids duplicate registration errors.
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, _ := newTestApp(t)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/", "200")))

	_, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/", "200")))

	_, err = app.Test(httptest.NewRequest("GET", "/error", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/error", "400")))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, _, reg := newTestApp(t)

	app.Get(MetricsPath, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", MetricsPath, nil))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() == "http_requests_total" {
			assert.Empty(t, mf.GetMetric())
		}
	}
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	app, m, _ := newTestApp(t)

	app.Get("/static/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/static/page.css", nil))
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/static/*", "200")))
	assert.NotZero(t, testutil.CollectAndCount(m.requestDuration))
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}

func TestPrometheusMiddleware_UnmatchedRoutes(t *testing.T) {
	app, m, _ := newTestApp(t)
	app.Use(RequestID())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/a", "/b", "/c"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	// Only the unmatched histogram series exists so far.
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", UnmatchedPath, "404")))

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))
}
