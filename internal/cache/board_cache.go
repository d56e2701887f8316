package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/omer1abay/Todo-App/internal/dto"

	"github.com/redis/go-redis/v9"
)

const keyBoard = "todo:board"

// BoardCache caches the aggregate board view in Redis.
type BoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBoardCache returns a new BoardCache.
func NewBoardCache(rdb *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached board or nil on a miss.
func (c *BoardCache) Get(ctx context.Context) (*dto.BoardResponse, error) {
	b, err := c.rdb.Get(ctx, keyBoard).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var board dto.BoardResponse
	if err := json.Unmarshal(b, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// Set stores the board.
func (c *BoardCache) Set(ctx context.Context, board dto.BoardResponse) error {
	b, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyBoard, b, c.ttl).Err()
}

// Invalidate drops the cached board (called after every write).
func (c *BoardCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyBoard).Err()
}
