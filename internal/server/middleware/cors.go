package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

type CORSConfig struct {
	// AllowOrigin matches the request Origin. Matching origins are echoed back.
	AllowOrigin      *regexp.Regexp
	AllowCredentials bool
}

// CORS return echo middleware that handle cors with regexp pattern
func CORS(config CORSConfig) echo.MiddlewareFunc {
	if config.AllowOrigin == nil {
		config.AllowOrigin = regexp.MustCompile(".*")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			respHeader := c.Response().Header()
			respHeader.Add(echo.HeaderVary, echo.HeaderOrigin)
			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" || !config.AllowOrigin.MatchString(origin) {
				return next(c)
			}
			respHeader.Set(echo.HeaderAccessControlAllowOrigin, origin)
			if config.AllowCredentials {
				respHeader.Set(echo.HeaderAccessControlAllowCredentials, "true")
			}

			preflight := req.Method == http.MethodOptions &&
				req.Header.Get(echo.HeaderAccessControlRequestMethod) != ""
			if !preflight {
				return next(c)
			}

			allowHeaders := req.Header.Get(echo.HeaderAccessControlRequestHeaders)
			if allowHeaders == "" {
				// `*` only may not cover Authorization header in Safari 12
				allowHeaders = "*, Authorization"
			}
			respHeader.Add(echo.HeaderVary, echo.HeaderAccessControlRequestMethod)
			respHeader.Add(echo.HeaderVary, echo.HeaderAccessControlRequestHeaders)
			respHeader.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			respHeader.Set(echo.HeaderAccessControlAllowMethods, "OPTIONS, POST, PUT, DELETE, GET, PATCH, HEAD")
			respHeader.Set(echo.HeaderAccessControlMaxAge, "600")
			return c.NoContent(http.StatusOK)
		}
	}
}
