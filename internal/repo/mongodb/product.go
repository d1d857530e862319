package mongodb

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type ProductRepository interface {
	List(ctx context.Context, filter models.ProductFilter, limit int64) ([]models.Product, error)
}

type productRepo struct {
	baseRepo[models.Product]
}

func NewProductRepository(db *DB) ProductRepository {
	return &productRepo{
		baseRepo: newBaseRepo[models.Product](db),
	}
}

func (r *productRepo) List(ctx context.Context, filter models.ProductFilter, limit int64) ([]models.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	products, err := r.Find(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
