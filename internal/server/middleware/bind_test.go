package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limitQuery struct {
	Limit *int64 `query:"limit"`
}

func newBindContext(method, target, body string) echo.Context {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("query limit", func(t *testing.T) {
		var q limitQuery
		c := newBindContext(http.MethodGet, "/api/products?limit=5", "")
		require.NoError(t, BindAndValidate(c, &q))
		require.NotNil(t, q.Limit)
		assert.EqualValues(t, 5, *q.Limit)
	})

	t.Run("missing limit stays nil", func(t *testing.T) {
		var q limitQuery
		c := newBindContext(http.MethodGet, "/api/products", "")
		require.NoError(t, BindAndValidate(c, &q))
		assert.Nil(t, q.Limit)
	})

	t.Run("non integer limit", func(t *testing.T) {
		var q limitQuery
		c := newBindContext(http.MethodGet, "/api/products?limit=lots", "")
		err := BindAndValidate(c, &q)
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	})

	t.Run("negative limit binds", func(t *testing.T) {
		var q limitQuery
		c := newBindContext(http.MethodGet, "/api/products?limit=-3", "")
		require.NoError(t, BindAndValidate(c, &q))
		assert.EqualValues(t, -3, *q.Limit)
	})

	t.Run("constraint violation", func(t *testing.T) {
		var req models.ContactRequest
		c := newBindContext(http.MethodPost, "/api/contact", `{"name":"Al","email":"a@b.com","message":"hello"}`)
		err := BindAndValidate(c, &req)
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "message", verr.Fields[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		var req models.ContactRequest
		c := newBindContext(http.MethodPost, "/api/contact", `{"name":`)
		err := BindAndValidate(c, &req)
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	})
}
