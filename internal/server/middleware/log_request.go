package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// LogRequestConfig store middleware configuration
type LogRequestConfig struct {
	Logger  Logger
	Skipper Skipper
	// RequestBody reports whether the JSON body of the request may be logged.
	// Nil logs every body.
	RequestBody func(c echo.Context) bool
	// MaxBodySize caps the logged body, 0 disables the cap.
	MaxBodySize int
}

// LogRequest writes one entry per request, at error level for 5xx, warn for
// 4xx and info otherwise.
func LogRequest(config LogRequestConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("Logger is required to use LogRequest")
	}
	if config.Skipper == nil {
		config.Skipper = DefaultSkipper
	}
	if config.RequestBody == nil {
		config.RequestBody = func(echo.Context) bool { return true }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()

			var body []byte
			logBody := config.RequestBody(c) &&
				strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
			if logBody {
				body, _ = io.ReadAll(req.Body)
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			args := []interface{}{
				"status", res.Status,
				"method", req.Method,
				"route", c.Path(),
				"uri", req.RequestURI,
				"latency_ms", time.Since(start).Milliseconds(),
				"real_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
				"request_id", GetRequestID(c),
			}
			if logBody && len(body) > 0 {
				args = append(args, "request_body", clipBody(body, config.MaxBodySize))
			}

			switch {
			case res.Status >= 500:
				if err != nil {
					args = append(args, "error", err.Error())
				}
				config.Logger.Errorw("request served", args...)
			case res.Status >= 400:
				config.Logger.Warnw("request served", args...)
			default:
				config.Logger.Infow("request served", args...)
			}

			return err
		}
	}
}

// clipBody keeps valid JSON as raw JSON and falls back to a string once the
// body has to be cut.
func clipBody(body []byte, limit int) interface{} {
	if limit > 0 && len(body) > limit {
		return string(body[:limit]) + "..."
	}
	if !json.Valid(body) {
		return string(body)
	}
	return json.RawMessage(body)
}
