package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const FieldRequestID = "request_id"

type requestContextKey struct{}

// WithRequestID stamps a per-invocation identifier on the context so the
// dispatcher and provider client log lines for one call correlate.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestContextKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestContextKey{}).(string)
	return id, ok && id != ""
}

func NewRequestID() string {
	return uuid.NewString()
}

// EnsureRequestID returns a context carrying a request ID, minting one when
// the context has none.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewRequestID()
	return WithRequestID(ctx, id), id
}

func LoggerWithRequest(ctx context.Context, base *zap.Logger) *zap.Logger {
	logger := base
	if logger == nil {
		logger = zap.NewNop()
	}
	id, ok := RequestIDFromContext(ctx)
	if !ok {
		return logger
	}
	return logger.With(zap.String(FieldRequestID, id))
}
