package app

import (
	"context"
	"time"

	"github.com/nguyentranbao-ct/lighting-api/internal/config"
	"github.com/nguyentranbao-ct/lighting-api/internal/repo/mongodb"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// newMongoDB never fails startup. Without DATABASE_URL/DATABASE_NAME, or when
// the client cannot be built, the service runs with an unavailable store.
func newMongoDB(lc fx.Lifecycle, cfg *config.Config, log *zap.SugaredLogger) *mongodb.DB {
	log = log.Named("mongodb")
	if !cfg.Database.Configured() {
		log.Warnw("database not configured, store unavailable",
			"DATABASE_URL", cfg.Database.URL != "",
			"DATABASE_NAME", cfg.Database.Name != "")
		return mongodb.Unavailable()
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	db, err := mongodb.NewConnection(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		log.Warnw("could not create mongo client, store unavailable", "error", err)
		return mongodb.Unavailable()
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Ping(ctx); err != nil {
				log.Warnw("mongo ping failed", "database", db.Name(), "error", err)
				return nil
			}
			log.Infow("connected to mongo", "database", db.Name())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return db.Close(ctx)
		},
	})
	return db
}

func newSugaredLogger(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}
