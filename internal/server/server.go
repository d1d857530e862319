package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nguyentranbao-ct/lighting-api/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/lighting-api/internal/server/middleware"
	"github.com/nguyentranbao-ct/lighting-api/pkg/logctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const contactPath = "/api/contact"

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	log *zap.SugaredLogger,
	handler Controller,
) error {
	log = log.Named("http")
	e, closeProfiler, err := NewRouter(conf, log, handler)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("HTTP server stopped", "error", err)
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer closeProfiler()
			return e.Shutdown(ctx)
		},
	})
	return nil
}

// NewRouter builds the echo instance with middleware and routes. The returned
// func flushes the statsd client.
func NewRouter(conf *config.Config, log *zap.SugaredLogger, handler Controller) (*echo.Echo, func(), error) {
	allowOrigin, err := regexp.Compile(conf.CORS.AllowOriginPattern)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid CORS_ALLOW_ORIGIN_PATTERN: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(log)

	logConfig := pkgmdw.LogRequestConfig{
		Logger: log,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/metrics"
		},
		// contact bodies carry personal data
		RequestBody: func(c echo.Context) bool {
			return c.Request().URL.Path != contactPath
		},
		MaxBodySize: 4 << 10,
	}

	profiler, closeProfiler := pkgmdw.ProfilerWithConfig(pkgmdw.ProfilerConfig{
		Log:     log,
		Address: conf.Statsd.Address,
		Service: conf.Statsd.Service,
	})

	e.Use(pkgmdw.CORS(pkgmdw.CORSConfig{
		AllowOrigin:      allowOrigin,
		AllowCredentials: conf.CORS.AllowCredentials,
	}))
	e.Use(pkgmdw.Metrics(pkgmdw.MetricsConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		MetricsPath: "/metrics",
	}))
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logctx.From(c.Request().Context(), log).Errorw("PANIC RECOVER", "error", err, "stack", string(stack))
			return err
		},
	}))
	e.Use(profiler)

	if conf.Server.Pprof {
		pkgmdw.PprofWrap(e)
	}

	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)
	e.GET("/test", handler.Diagnostics)

	api := e.Group("/api")
	api.GET("/products", handler.ListProducts)
	api.GET("/products/featured", handler.ListFeaturedProducts)
	api.POST("/contact", handler.SubmitContact)

	return e, closeProfiler, nil
}
