package logctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
}

func TestFrom(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	From(context.Background(), log).Info("no request")
	From(WithRequestID(context.Background(), "req-2"), log).Info("with request")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())
	assert.Equal(t, map[string]interface{}{"request_id": "req-2"}, entries[1].ContextMap())
}
