package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// keep the baseRepo implementation in sync with IRepository interface
var _ IRepository[IEntity] = (*baseRepo[IEntity])(nil)

type IEntity interface {
	CollectionName() string
}

type IRepository[E IEntity] interface {
	Insert(ctx context.Context, entity E) (string, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]E, error)
}

type baseRepo[E IEntity] struct {
	db         *DB
	collection string
}

func newBaseRepo[E IEntity](db *DB) baseRepo[E] {
	var entity E
	return baseRepo[E]{
		db:         db,
		collection: entity.CollectionName(),
	}
}

func (r *baseRepo[E]) Insert(ctx context.Context, entity E) (string, error) {
	return r.db.Insert(ctx, r.collection, entity)
}

func (r *baseRepo[E]) Find(ctx context.Context, filter bson.M, limit int64) ([]E, error) {
	entities := []E{}
	if err := r.db.Query(ctx, r.collection, filter, limit, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}
