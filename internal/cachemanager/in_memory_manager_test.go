package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type option struct {
	ID   string
	Name string
}

type lookupKey string

func newCache() *InMemoryCacheManager[lookupKey, []option] {
	return NewInMemoryCacheManager[lookupKey, []option]("lookups", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemory_SetGet(t *testing.T) {
	c := newCache()
	want := []option{{ID: "1", Name: "Maharashtra"}}
	c.Set(context.Background(), "states", want, time.Minute)

	got, ok := c.Get(context.Background(), "states")
	require.True(t, ok)
	require.Equal(t, want, got)
	require.Equal(t, 1, c.Len())
}

func TestInMemory_Miss(t *testing.T) {
	got, ok := newCache().Get(context.Background(), "states")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemory_WrongTypeIsMiss(t *testing.T) {
	c := newCache()
	c.cache.Set("states", 123, time.Minute)

	got, ok := c.Get(context.Background(), "states")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemory_Expiry(t *testing.T) {
	c := newCache()
	c.Set(context.Background(), "cities", []option{{ID: "4"}}, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, ok := c.Get(context.Background(), "cities")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemory_GetWithRefresh(t *testing.T) {
	c := newCache()
	_, ok := c.GetWithRefresh(context.Background(), "states", time.Hour)
	require.False(t, ok)

	c.Set(context.Background(), "states", []option{{ID: "1"}}, 30*time.Millisecond)
	got, ok := c.GetWithRefresh(context.Background(), "states", time.Hour)
	require.True(t, ok)
	require.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get(context.Background(), "states")
	require.True(t, ok, "refresh extended the entry")
}

func TestInMemory_DeleteAndFlush(t *testing.T) {
	c := newCache()
	ctx := context.Background()
	require.NoError(t, c.Delete(ctx))

	c.Set(ctx, "a", nil, 0)
	c.Set(ctx, "b", nil, 0)
	c.Set(ctx, "c", nil, 0)
	require.NoError(t, c.Delete(ctx, "a", "b"))
	_, ok := c.Get(ctx, "a")
	require.False(t, ok)
	_, ok = c.Get(ctx, "c")
	require.True(t, ok)

	require.NoError(t, c.Flush(ctx))
	require.Zero(t, c.Len())
}
