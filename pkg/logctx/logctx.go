// Package logctx carries the request id through context.Context so loggers
// below the HTTP layer can tag their entries with it.
package logctx

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// From returns log tagged with the request id of ctx, or log itself when ctx
// has none.
func From(ctx context.Context, log *zap.SugaredLogger) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return log.With("request_id", id)
	}
	return log
}
