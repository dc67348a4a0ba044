package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetRemove(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Remove(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestMemoryStoreTTL(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetTTL(ctx, "k", "v", 10*time.Millisecond))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	time.Sleep(20 * time.Millisecond)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestMemoryStoreSubscribe(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var keys []string
	unsubscribe := s.Subscribe(func(key string) { keys = append(keys, key) })

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Remove(ctx, "a"))
	assert.Equal(t, []string{"a", "a"}, keys)

	unsubscribe()
	require.NoError(t, s.Set(ctx, "b", "2"))
	assert.Len(t, keys, 2)
}
