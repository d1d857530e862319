package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"gopkg.in/alexcesaro/statsd.v2"
)

type (
	ProfilerConfig struct {
		Log     Logger
		Skipper Skipper
		// Address of the statsd daemon. An empty address disables the middleware.
		Address string
		Service string
	}
)

var DefaultProfilerConfig = ProfilerConfig{
	Log:     nil,
	Skipper: DefaultSkipper,
	Address: "",
	Service: "lighting-api",
}

// ProfilerWithConfig sends a statsd timing per request, bucketed by route and
// status. The returned close func flushes the client.
func ProfilerWithConfig(config ProfilerConfig) (echo.MiddlewareFunc, func()) {
	if config.Skipper == nil {
		config.Skipper = DefaultProfilerConfig.Skipper
	}
	if config.Service == "" {
		config.Service = DefaultProfilerConfig.Service
	}

	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if config.Address == "" {
		return passthrough, func() {}
	}

	client, err := statsd.New(
		statsd.Address(config.Address),
		statsd.ErrorHandler(func(err error) {
			if config.Log != nil {
				config.Log.Warnw("statsd error", "error", err)
			}
		}),
	)
	if err != nil {
		if config.Log != nil {
			config.Log.Warnw("statsd disabled", "address", config.Address, "error", err)
		}
		return passthrough, func() {}
	}

	mw := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()
			t := client.NewTiming()
			if err = next(c); err != nil {
				c.Error(err)
			}

			s := bucketName(config.Service, req.Method, c.Path(), res.Status)
			if config.Log != nil {
				config.Log.Debugf(s)
			}
			t.Send(s)

			return
		}
	}
	return mw, client.Close
}

func bucketName(service, method, path string, status int) string {
	path = strings.Trim(strings.ReplaceAll(path, "/", "_"), "_")
	if path == "" {
		path = "root"
	}
	return strings.ToLower(fmt.Sprintf("response.%s.%s.%s.%d", service, method, path, status))
}
