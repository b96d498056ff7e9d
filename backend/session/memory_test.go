package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAndVerify(t *testing.T) {
	r := NewMemoryRegistry(7 * 24 * time.Hour)
	ctx := context.Background()

	token, err := r.Create(ctx, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := r.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestMemoryVerifyUnknownToken(t *testing.T) {
	r := NewMemoryRegistry(time.Hour)

	userID, err := r.Verify(context.Background(), "session_0_nope")
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMemoryLazyExpiry(t *testing.T) {
	// A negative TTL makes every session already expired at creation.
	r := NewMemoryRegistry(-time.Hour)
	ctx := context.Background()

	token, err := r.Create(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	userID, err := r.Verify(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, userID)

	// The expired entry was collected by the lookup itself.
	assert.Equal(t, 0, r.Len())
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	r := NewMemoryRegistry(time.Hour)
	ctx := context.Background()

	token, err := r.Create(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, token))
	require.NoError(t, r.Delete(ctx, token))

	userID, err := r.Verify(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMemoryMultipleSessionsPerUser(t *testing.T) {
	r := NewMemoryRegistry(time.Hour)
	ctx := context.Background()

	first, err := r.Create(ctx, "u1")
	require.NoError(t, err)
	second, err := r.Create(ctx, "u1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Creating a second session never revokes the first.
	userID, err := r.Verify(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}
