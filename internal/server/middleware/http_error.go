package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/lighting-api/internal/models"
)

// StatusClientClosedRequest is reported when the client went away before the
// handler finished.
const StatusClientClosedRequest = 499

const storeUnavailableDetail = "Database not available"

// ErrorHandler return custom http error handler rendering `{"detail": ...}`.
func ErrorHandler(log Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		resp := &ErrorResponse{
			Status: http.StatusInternalServerError,
			Err:    err,
			Detail: http.StatusText(http.StatusInternalServerError),
		}

		var (
			validationErr *models.ValidationError
			httpErr       *echo.HTTPError
			respErr       *ErrorResponse
		)
		switch {
		case errors.As(err, &respErr):
			resp = respErr
		case errors.As(err, &validationErr):
			resp.Status = http.StatusUnprocessableEntity
			resp.Detail = validationErr.Fields
		case errors.As(err, &httpErr):
			resp.Status = httpErr.Code
			resp.Detail = httpErr.Message
		case errors.Is(err, models.ErrStoreUnavailable):
			resp.Detail = storeUnavailableDetail
		case errors.Is(err, context.Canceled) && c.Request().Context().Err() == context.Canceled:
			resp.Status = StatusClientClosedRequest
		}

		if resp.Status == http.StatusNotFound && isNotFoundHandler(c.Handler()) {
			resp.Detail = "no route matched"
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.Status)
		} else {
			err = c.JSON(resp.Status, resp)
		}
		if err != nil {
			log.Errorw("could not response", "code", resp.Status, "response_body", resp)
		}
	}
}
