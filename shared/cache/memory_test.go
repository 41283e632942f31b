package cache_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomTypeEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, c.Save(ctx, "roomtype:gets", []roomTypeEntry{{ID: 2, Name: "Double Bed Room"}}, 60))

	var got []roomTypeEntry
	require.NoError(t, c.Get(ctx, "roomtype:gets", &got))
	assert.Equal(t, []roomTypeEntry{{ID: 2, Name: "Double Bed Room"}}, got)
}

func TestMemoryCache_StringValue(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, c.Save(ctx, "k", "raw", 60))

	var got string
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, "raw", got)
}

func TestMemoryCache_MissAndExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	var got int
	err := c.Get(ctx, "missing", &got)
	assert.True(t, errors.Is(err, cache.Nil))

	require.NoError(t, c.Save(ctx, "expired", 1, 0))
	err = c.Get(ctx, "expired", &got)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestMemoryCache_ClearByPrefix(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, c.Save(ctx, "room:gets:floor=2", 1, 60))
	require.NoError(t, c.Save(ctx, "room:get:204", 2, 60))
	require.NoError(t, c.Save(ctx, "guest:get:U1", 3, 60))

	require.NoError(t, c.Clear(ctx, "room:"))

	var got int
	assert.Error(t, c.Get(ctx, "room:gets:floor=2", &got))
	assert.Error(t, c.Get(ctx, "room:get:204", &got))
	require.NoError(t, c.Get(ctx, "guest:get:U1", &got))
	assert.Equal(t, 3, got)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, c.Save(ctx, "guest:get:U1", 1, 60))
	require.NoError(t, c.Delete(ctx, "guest:get:U1"))

	var got int
	assert.Error(t, c.Get(ctx, "guest:get:U1", &got))
}
