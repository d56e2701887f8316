package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

// Session is what a session id resolves to.
type Session struct {
	UserID   int64
	Username string
}

// Sessions is the session storage the middleware and handlers depend on.
type Sessions interface {
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error
}

// Store manages sessions in Redis, one hash per session.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new session store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL is how long a session lives.
func (s *Store) TTL() time.Duration { return s.ttl }

// Create stores a new session and returns its ID.
func (s *Store) Create(ctx context.Context, sess Session) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	key := sessionKeyPrefix + id
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, "user_id", sess.UserID, "username", sess.Username)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Get resolves a session ID. ok is false when it does not exist or has expired.
func (s *Store) Get(ctx context.Context, id string) (Session, bool, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return Session{}, false, err
	}
	if len(vals) == 0 {
		return Session{}, false, nil
	}
	uid, err := strconv.ParseInt(vals["user_id"], 10, 64)
	if err != nil {
		return Session{}, false, errors.New("corrupt session")
	}
	return Session{UserID: uid, Username: vals["username"]}, true, nil
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
