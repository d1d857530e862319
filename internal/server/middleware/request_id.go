package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/lighting-api/pkg/logctx"
)

const XRequestID = "x-request-id"

// maxRequestIDLength bounds ids taken from clients before they reach the logs.
const maxRequestIDLength = 128

// RequestID reuses the caller's x-request-id or generates a UUID. The id is
// put on the echo context, the request context (see logctx) and the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(XRequestID)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			c.Set(XRequestID, id)
			c.SetRequest(req.WithContext(logctx.WithRequestID(req.Context(), id)))
			c.Response().Header().Set(XRequestID, id)
			return next(c)
		}
	}
}

func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(XRequestID).(string); ok {
		return id
	}
	return logctx.RequestID(c.Request().Context())
}
