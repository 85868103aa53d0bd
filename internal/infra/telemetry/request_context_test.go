package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	id, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-123", id)
}

func TestRequestID_EmptyContextHasNone(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestEnsureRequestID(t *testing.T) {
	ctx, minted := EnsureRequestID(context.Background())
	assert.NotEmpty(t, minted)

	// An existing ID is preserved, not replaced.
	ctx2, existing := EnsureRequestID(ctx)
	assert.Equal(t, minted, existing)
	assert.Equal(t, ctx, ctx2)
}

func TestWithRequestID_IgnoresEmptyID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)
}
