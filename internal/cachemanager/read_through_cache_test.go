package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCacheManager struct {
	mock.Mock
}

func (m *mockCacheManager) Get(ctx context.Context, key string) ([]option, bool) {
	args := m.Called(ctx, key)
	v, _ := args.Get(0).([]option)
	return v, args.Bool(1)
}

func (m *mockCacheManager) GetWithRefresh(ctx context.Context, key string, ttl time.Duration) ([]option, bool) {
	args := m.Called(ctx, key, ttl)
	v, _ := args.Get(0).([]option)
	return v, args.Bool(1)
}

func (m *mockCacheManager) Set(ctx context.Context, key string, value []option, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCacheManager) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newMock(t *testing.T) *mockCacheManager {
	m := &mockCacheManager{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type fetchInput struct {
	HotelID string
}

func fetchFor(calls *int) func(context.Context, fetchInput) ([]option, error) {
	return func(_ context.Context, in fetchInput) ([]option, error) {
		*calls++
		return []option{{ID: in.HotelID, Name: "Dining"}}, nil
	}
}

func TestReadThroughCache_SkipCache(t *testing.T) {
	m := newMock(t)
	var calls int
	rt := NewReadThroughCache[string, []option, fetchInput](m, fetchFor(&calls), true)

	got, err := rt.Get(context.Background(), "k", fetchInput{HotelID: "9"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []option{{ID: "9", Name: "Dining"}}, got)

	_, err = rt.GetWithRefresh(context.Background(), "k", fetchInput{HotelID: "9"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestReadThroughCache_Hit(t *testing.T) {
	m := newMock(t)
	cached := []option{{ID: "1", Name: "Cached"}}
	m.On("Get", mock.Anything, "k").Return(cached, true).Once()

	var calls int
	rt := NewReadThroughCache[string, []option, fetchInput](m, fetchFor(&calls), false)
	got, err := rt.Get(context.Background(), "k", fetchInput{HotelID: "9"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, cached, got)
	require.Zero(t, calls)
}

func TestReadThroughCache_MissLoadsAndStores(t *testing.T) {
	m := newMock(t)
	want := []option{{ID: "9", Name: "Dining"}}
	m.On("Get", mock.Anything, "k").Return(nil, false).Once()
	m.On("Set", mock.Anything, "k", want, time.Minute).Return().Once()

	var calls int
	rt := NewReadThroughCache[string, []option, fetchInput](m, fetchFor(&calls), false)
	got, err := rt.Get(context.Background(), "k", fetchInput{HotelID: "9"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	m := newMock(t)
	m.On("GetWithRefresh", mock.Anything, "k", time.Minute).Return(nil, false).Once()

	rt := NewReadThroughCache[string, []option, fetchInput](m,
		func(context.Context, fetchInput) ([]option, error) { return nil, errors.New("backend down") },
		false)
	_, err := rt.GetWithRefresh(context.Background(), "k", fetchInput{}, time.Minute)
	require.EqualError(t, err, "backend down")
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	m := newMock(t)
	m.On("Delete", mock.Anything, []string{"a", "b"}).Return(nil).Once()

	rt := NewReadThroughCache[string, []option, fetchInput](m, nil, false)
	require.NoError(t, rt.Invalidate(context.Background()))
	require.NoError(t, rt.Invalidate(context.Background(), "a", "b"))
}

func TestReadThroughCache_WithInMemory(t *testing.T) {
	var calls int
	rt := NewReadThroughCache[lookupKey, []option, fetchInput](newCache(), func(_ context.Context, in fetchInput) ([]option, error) {
		calls++
		return []option{{ID: in.HotelID}}, nil
	}, false)
	ctx := context.Background()

	for range 3 {
		_, err := rt.Get(ctx, "types:9", fetchInput{HotelID: "9"}, time.Minute)
		require.NoError(t, err)
	}
	require.Equal(t, 1, calls)

	require.NoError(t, rt.Invalidate(ctx, "types:9"))
	_, err := rt.Get(ctx, "types:9", fetchInput{HotelID: "9"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
