package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeerrors "github.com/yourusername/cookstore/pkg/errors"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(0)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "cart", `[{"id":"a"}]`))
	v, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	require.NoError(t, s.Delete(ctx, "cart"))
	_, ok, err = s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	require.NoError(t, s.Delete(ctx, "cart"))
}

func TestMemoryEmptyKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(16)

	_, _, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, storeerrors.ErrKeyEmpty)
	assert.ErrorIs(t, s.Set(ctx, "", "x"), storeerrors.ErrKeyEmpty)
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(16)
	require.NoError(t, s.Close())

	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, storeerrors.ErrClosed)
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), storeerrors.ErrClosed)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(16)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n)
			for j := 0; j < 100; j++ {
				_ = s.Set(ctx, key, fmt.Sprintf("%d", j))
				_, _, _ = s.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	v, ok, err := s.Get(ctx, "key-0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "99", v)
}

func TestMemoryShardCountFallback(t *testing.T) {
	// Non-power-of-two shard counts fall back to the default.
	s := NewMemory(5)
	assert.Len(t, s.shards, defaultShardCount)
}
