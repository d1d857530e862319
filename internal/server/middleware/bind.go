package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BindAndValidate bind request context and validate request struct.
// Bind includes request body, params and query. Both malformed input and
// constraint violations are answered with 422.
func BindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return unprocessable(err)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}

func unprocessable(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprint(he.Message)).SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).SetInternal(err)
}
