package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

var (
	DefaultSkipper = func(c echo.Context) bool {
		return false
	}
)

type Skipper func(c echo.Context) bool

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Debugw(template string, args ...interface{})
	Infow(template string, args ...interface{})
	Warnw(template string, args ...interface{})
	Errorw(template string, args ...interface{})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status int         `json:"-"`
	Err    error       `json:"-"`
	Detail interface{} `json:"detail"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("status: %d; detail: %+v; error: %v", e.Status, e.Detail, e.Err)
}

func (e *ErrorResponse) Unwrap() error {
	return e.Err
}
