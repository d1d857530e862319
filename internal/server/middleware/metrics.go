package middleware

import (
	"reflect"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/lighting-api/pkg/util"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	httpRequestsDuration = "request_duration_seconds"
	notFoundPath         = "/not-found"
)

type MetricsConfig struct {
	Skipper Skipper
	// MetricsPath is answered with the prometheus exposition, empty disables it.
	MetricsPath string
}

func isNotFoundHandler(handler echo.HandlerFunc) bool {
	return reflect.ValueOf(handler).Pointer() == reflect.ValueOf(echo.NotFoundHandler).Pointer()
}

// Metrics observes request_duration_seconds{code,method,path} per route.
// Unmatched requests share one path label so random URLs cannot blow up the
// series count.
func Metrics(config MetricsConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultSkipper
	}

	httpMetrics, err := util.GetHistogramVec(httpRequestsDuration, "code", "method", "path")
	if err != nil {
		panic(err)
	}

	var promHandler echo.HandlerFunc
	if config.MetricsPath != "" {
		promHandler = echo.WrapHandler(promhttp.Handler())
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if promHandler != nil && req.URL.Path == config.MetricsPath {
				return promHandler(c)
			}
			if config.Skipper(c) {
				return next(c)
			}

			path := c.Path()
			if isNotFoundHandler(c.Handler()) {
				path = notFoundPath
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			httpMetrics.WithLabelValues(status, req.Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
