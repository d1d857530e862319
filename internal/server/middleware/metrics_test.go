package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/lighting-api/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetHTTPMetrics(t *testing.T) {
	t.Helper()
	httpMetrics, err := util.GetHistogramVec(httpRequestsDuration, "code", "method", "path")
	require.NoError(t, err)
	httpMetrics.Reset()
}

func scrape(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics(t *testing.T) {
	resetHTTPMetrics(t)
	e := echo.New()
	e.Use(Metrics(MetricsConfig{MetricsPath: "/metrics"}))

	e.GET("/api/products", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	e.GET("/api/products/featured", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "Database not available")
	})
	e.POST("/api/contact", func(c echo.Context) error {
		return fmt.Errorf("insert one: timeout")
	})

	for i := 0; i < 10; i++ {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products?limit=2", nil))
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/featured", nil))
	}
	for i := 0; i < 4; i++ {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	}
	for i := 0; i < 7; i++ {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, fmt.Sprintf("/lamps/%d", i), nil))
	}

	body := scrape(t, e)
	for _, want := range []string{
		`request_duration_seconds_count{code="200",method="GET",path="/api/products"} 10`,
		`request_duration_seconds_count{code="500",method="GET",path="/api/products/featured"} 10`,
		`request_duration_seconds_count{code="500",method="POST",path="/api/contact"} 4`,
		`request_duration_seconds_count{code="404",method="GET",path="/not-found"} 7`,
	} {
		assert.Contains(t, body, want)
	}
	assert.False(t, strings.Contains(body, `path="/lamps/1"`))
}

func TestMetricsSkipper(t *testing.T) {
	resetHTTPMetrics(t)
	e := echo.New()
	e.Use(Metrics(MetricsConfig{
		MetricsPath: "/metrics",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
	}))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotContains(t, scrape(t, e), `path="/health"`)
}
