package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	pkgmdw "github.com/nguyentranbao-ct/lighting-api/internal/server/middleware"
	"github.com/nguyentranbao-ct/lighting-api/internal/usecase"
)

type Controller interface {
	Root(c echo.Context) error
	Health(c echo.Context) error
	ListProducts(c echo.Context) error
	ListFeaturedProducts(c echo.Context) error
	SubmitContact(c echo.Context) error
	Diagnostics(c echo.Context) error
}

type controller struct {
	productUsecase     usecase.ProductUsecase
	contactUsecase     usecase.ContactUsecase
	diagnosticsUsecase usecase.DiagnosticsUsecase
}

func NewHandler(
	productUsecase usecase.ProductUsecase,
	contactUsecase usecase.ContactUsecase,
	diagnosticsUsecase usecase.DiagnosticsUsecase,
) Controller {
	return &controller{
		productUsecase:     productUsecase,
		contactUsecase:     contactUsecase,
		diagnosticsUsecase: diagnosticsUsecase,
	}
}

// Limit is only required to be an integer. It reaches the store unchanged,
// so 0 means no limit and a negative value a single batch of -limit.
type listProductsRequest struct {
	Category string `query:"category"`
	Limit    *int64 `query:"limit"`
}

type listFeaturedRequest struct {
	Limit *int64 `query:"limit"`
}

func (h *controller) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Design Lighting API running",
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "lighting-api",
	})
}

func (h *controller) ListProducts(c echo.Context) error {
	var req listProductsRequest
	if err := pkgmdw.BindAndValidate(c, &req); err != nil {
		return err
	}

	products, err := h.productUsecase.ListProducts(c.Request().Context(), req.Category, req.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *controller) ListFeaturedProducts(c echo.Context) error {
	var req listFeaturedRequest
	if err := pkgmdw.BindAndValidate(c, &req); err != nil {
		return err
	}

	products, err := h.productUsecase.ListFeaturedProducts(c.Request().Context(), req.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *controller) SubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := pkgmdw.BindAndValidate(c, &req); err != nil {
		return err
	}

	receipt, err := h.contactUsecase.SubmitContact(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, receipt)
}

// Diagnostics always answers 200, the report carries any failure.
func (h *controller) Diagnostics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.diagnosticsUsecase.Report(c.Request().Context()))
}
