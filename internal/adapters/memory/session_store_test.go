package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/testutil"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testutil.NewSession().WithID("sess-1").Build()
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestMemorySessionStoreRejectsEmptyID(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, testutil.NewSession().WithID("").Build()))

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, ""))
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	expired := testutil.NewSession().WithID("old").ExpiredAt(time.Now().Add(-time.Minute)).Build()
	require.NoError(t, store.Save(ctx, expired))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestMemorySessionStoreDeleteExpired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID("live").Build()))
	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID("old-1").ExpiredAt(time.Now().Add(-time.Minute)).Build()))
	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID("old-2").ExpiredAt(time.Now().Add(-time.Hour)).Build()))

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = store.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestMemorySessionStoreOverwrite(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID("sess-1").WithEmail("a@example.com").Build()))
	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID("sess-1").WithEmail("b@example.com").Build()))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", got.Email)
}
