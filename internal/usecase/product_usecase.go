package usecase

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/lighting-api/internal/config"
	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"github.com/nguyentranbao-ct/lighting-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/lighting-api/pkg/util"
)

type ProductUsecase interface {
	ListProducts(ctx context.Context, category string, limit *int64) ([]models.ProductResponse, error)
	ListFeaturedProducts(ctx context.Context, limit *int64) ([]models.ProductResponse, error)
}

type productUsecase struct {
	productRepo mongodb.ProductRepository
	conf        config.ProductsConfig
}

func NewProductUsecase(cfg *config.Config, productRepo mongodb.ProductRepository) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
		conf:        cfg.Products,
	}
}

func (uc *productUsecase) ListProducts(ctx context.Context, category string, limit *int64) ([]models.ProductResponse, error) {
	filter := models.ProductFilter{Category: category}
	return uc.list(ctx, filter, uc.resolveLimit(limit, uc.conf.DefaultLimit))
}

// ListFeaturedProducts has no featured flag to filter on, it returns the first
// products in store order.
func (uc *productUsecase) ListFeaturedProducts(ctx context.Context, limit *int64) ([]models.ProductResponse, error) {
	return uc.list(ctx, models.ProductFilter{}, uc.resolveLimit(limit, uc.conf.FeaturedLimit))
}

func (uc *productUsecase) list(ctx context.Context, filter models.ProductFilter, limit int64) ([]models.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return util.ConvertList(products, models.Product.Serialize), nil
}

// resolveLimit applies the default and, when configured, the operator cap.
// Without a cap the caller's limit is passed through unchanged.
func (uc *productUsecase) resolveLimit(limit *int64, def int64) int64 {
	n := def
	if limit != nil {
		n = *limit
	}
	capped := uc.conf.MaxLimit
	switch {
	case capped <= 0:
	case n < 0 && -n > capped:
		n = -capped
	case n == 0 || n > capped:
		n = capped
	}
	return n
}
