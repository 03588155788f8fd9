package idempotency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruangobat-admin/database"
	"ruangobat-admin/internal/domain/idempotency"
)

func newStore(t *testing.T) *idempotency.Store {
	t.Helper()
	db := database.InitTestDB()
	t.Cleanup(func() { database.CloseTestDB(db) })
	return idempotency.NewStore(db)
}

func TestStore_KeyIsStableUntilDiscarded(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	flow, err := store.StartFlow(ctx, "admin-1")
	require.NoError(t, err)
	require.NotNil(t, flow.IdempotencyKey)

	first, err := store.Current(ctx, flow.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, idempotency.Key(*flow.IdempotencyKey), first)

	again, err := store.Current(ctx, flow.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, first, again, "retries of one submission must share a key")

	require.NoError(t, store.Discard(ctx, flow.ID, first))

	next, err := store.Current(ctx, flow.ID, "admin-1")
	require.NoError(t, err)
	assert.False(t, next.IsZero())
	assert.NotEqual(t, first, next)
}

func TestStore_DiscardIgnoresStaleKey(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	flow, err := store.StartFlow(ctx, "admin-1")
	require.NoError(t, err)
	current, err := store.Current(ctx, flow.ID, "admin-1")
	require.NoError(t, err)

	require.NoError(t, store.Discard(ctx, flow.ID, idempotency.Key("not-the-key")))

	still, err := store.Current(ctx, flow.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, current, still)
}

func TestStore_FlowIsScopedToAdmin(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	flow, err := store.StartFlow(ctx, "admin-1")
	require.NoError(t, err)

	_, err = store.Current(ctx, flow.ID, "admin-2")
	assert.ErrorIs(t, err, idempotency.ErrFlowNotFound)

	_, err = store.Current(ctx, "missing", "admin-1")
	assert.ErrorIs(t, err, idempotency.ErrFlowNotFound)

	_, err = store.StartFlow(ctx, "")
	assert.Error(t, err)
}

func TestStore_RetiredFlowIsGone(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	flow, err := store.StartFlow(ctx, "admin-1")
	require.NoError(t, err)

	require.NoError(t, store.Retire(ctx, flow.ID))

	_, err = store.Current(ctx, flow.ID, "admin-1")
	assert.ErrorIs(t, err, idempotency.ErrFlowNotFound)
}
