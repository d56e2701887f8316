package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/omer1abay/Todo-App/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestCache needs a Redis at REDIS_ADDR (default localhost:6379); skips otherwise.
func setupTestCache(t *testing.T) *BoardCache {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	c := NewBoardCache(rdb, time.Minute)
	_ = c.Invalidate(context.Background())
	t.Cleanup(func() {
		_ = c.Invalidate(context.Background())
		_ = rdb.Close()
	})
	return c
}

func TestBoardCacheRoundTrip(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache is a miss")

	board := dto.BoardResponse{
		Lists: []dto.TodoListResponse{{ID: 1, Title: "Groceries", Items: []dto.TodoItemResponse{}}},
		Tags:  []dto.TagResponse{{ID: 1, Name: "Urgent"}},
	}
	require.NoError(t, c.Set(ctx, board))

	got, err = c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Groceries", got.Lists[0].Title)

	require.NoError(t, c.Invalidate(ctx))
	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
