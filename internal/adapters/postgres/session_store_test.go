package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/testutil"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	pool := testutil.SkipIfNoTestDB(t)
	store := NewSessionStore(pool)
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestPostgresSessionStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := testutil.NewSession().WithID(uuid.NewString()).WithRole(domainauth.RoleAdmin).Build()
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.Email, got.Email)
	assert.Equal(t, domainauth.RoleAdmin, got.Role)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestPostgresSessionStoreUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID(id).WithEmail("a@example.com").Build()))
	require.NoError(t, store.Save(ctx, testutil.NewSession().WithID(id).WithEmail("b@example.com").WithToken("rotated").Build()))
	t.Cleanup(func() { _ = store.Delete(context.Background(), id) })

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", got.Email)
	assert.Equal(t, "rotated", got.Token)
}

func TestPostgresSessionStoreExpiredRowsAreInvisible(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := uuid.NewString()
	expired := testutil.NewSession().WithID(id).ExpiredAt(time.Now().Add(-time.Minute)).Build()
	require.NoError(t, store.Save(ctx, expired))
	t.Cleanup(func() { _ = store.Delete(context.Background(), id) })

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))
}

func TestPostgresSessionStoreHealthy(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Healthy(context.Background(), 2*time.Second))
}
