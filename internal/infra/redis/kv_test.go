package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// Runs against a live server only when TEST_REDIS_ADDR is set.
func TestKVStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, addr, 15)
	require.NoError(t, err)

	store := NewKVStore(client)
	key := "test:" + t.Name()
	t.Cleanup(func() {
		client.Del(context.Background(), key)
		_ = store.Close()
	})

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, key, []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}, got)
}
