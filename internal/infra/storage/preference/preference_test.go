package preference

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := newRedisStore(t, 24*time.Hour)
	ctx := context.Background()

	_, err := store.Get(ctx, "v1")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, store.Set(ctx, "v1", "ko"))
	lang, err := store.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "ko", lang)

	assert.Equal(t, 24*time.Hour, mr.TTL(keyPrefix+"v1"))
}

func TestRedisStore_Expires(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "v2", "ru"))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "v2")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t, 0)
	mr.Close()

	_, err := store.Get(context.Background(), "v3")
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, store.Set(context.Background(), "v3", "de"), ErrStore)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "v")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, store.Set(ctx, "v", "de"))
	lang, err := store.Get(ctx, "v")
	require.NoError(t, err)
	assert.Equal(t, "de", lang)
}
