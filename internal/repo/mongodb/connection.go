package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"github.com/nguyentranbao-ct/lighting-api/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is the shared store handle. A DB without a database is unavailable and
// every operation on it fails with models.ErrStoreUnavailable.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	metrics  *prometheus.HistogramVec
}

func NewDB(client *mongo.Client, database *mongo.Database) *DB {
	// metrics are optional, a registration conflict only disables them
	metrics, _ := util.GetHistogramVec("store_operation_duration_seconds", "operation", "collection")
	return &DB{
		client:   client,
		database: database,
		metrics:  metrics,
	}
}

// Unavailable returns a handle for a service started without a database.
func Unavailable() *DB {
	return &DB{}
}

// NewConnection builds a client for uri. No round trip is made, use Ping to
// check the server.
func NewConnection(ctx context.Context, uri, database string) (*DB, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName("lighting-api").
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second).
		SetTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return NewDB(client, client.Database(database)), nil
}

func (db *DB) Available() bool {
	return db != nil && db.database != nil
}

func (db *DB) Name() string {
	if !db.Available() {
		return ""
	}
	return db.database.Name()
}

func (db *DB) Ping(ctx context.Context) error {
	if !db.Available() {
		return models.ErrStoreUnavailable
	}
	return db.client.Ping(ctx, nil)
}

func (db *DB) Close(ctx context.Context) error {
	if db == nil || db.client == nil {
		return nil
	}
	return db.client.Disconnect(ctx)
}

// Insert stores document in collection and returns its identifier.
func (db *DB) Insert(ctx context.Context, collection string, document any) (string, error) {
	if !db.Available() {
		return "", models.ErrStoreUnavailable
	}

	defer db.observe("insert", collection, time.Now())
	result, err := db.database.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("insert one: %w", err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("invalid inserted id: %T %+v", result.InsertedID, result.InsertedID)
	}
}

// Query decodes up to limit documents matching the exact-match filter into
// results, which must be a pointer to a slice. A limit of 0 means no limit, a
// negative limit returns a single batch of at most -limit documents.
func (db *DB) Query(ctx context.Context, collection string, filter bson.M, limit int64, results any) error {
	if !db.Available() {
		return models.ErrStoreUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	defer db.observe("find", collection, time.Now())
	opts := options.Find().SetLimit(limit)
	cursor, err := db.database.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("cursor all: %w", err)
	}
	return nil
}

// CollectionNames lists at most limit collection names of the database.
func (db *DB) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if !db.Available() {
		return nil, models.ErrStoreUnavailable
	}

	names, err := db.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collection names: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (db *DB) observe(operation, collection string, start time.Time) {
	if db.metrics == nil {
		return
	}
	db.metrics.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
}
