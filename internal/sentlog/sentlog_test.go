package sentlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreStartsEmpty(t *testing.T) {
	store := NewMemoryStore()

	sent, err := store.Sent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestMemoryStoreMarkAndRead(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.MarkSent(ctx, "task-1"))
	require.NoError(t, store.MarkSent(ctx, "task-2"))
	require.NoError(t, store.MarkSent(ctx, "task-1")) // idempotent

	sent, err := store.Sent(ctx)
	require.NoError(t, err)
	assert.Len(t, sent, 2)
	assert.True(t, sent["task-1"])
	assert.True(t, sent["task-2"])
	assert.False(t, sent["task-3"])
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.MarkSent(ctx, "task-1"))
	require.NoError(t, store.Clear(ctx))

	sent, err := store.Sent(ctx)
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.MarkSent(ctx, "task-1"))

	sent, err := store.Sent(ctx)
	require.NoError(t, err)
	sent["task-2"] = true

	again, err := store.Sent(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}
