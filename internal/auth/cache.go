package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// SessionCache is the token-to-user cross-reference consulted on every
// authenticated request. It is a cache, not a source of truth: a token absent
// here is treated as invalid even when its durable record is still unexpired.
type SessionCache interface {
	Put(ctx context.Context, token string, user *domain.User) error
	Get(ctx context.Context, token string) (*domain.User, bool)
}

type memorySessionCache struct {
	mu       sync.RWMutex
	sessions map[string]*domain.User
}

// NewMemorySessionCache returns the default in-process cache. Entries live
// until the process exits, which is what invalidates all sessions on restart.
func NewMemorySessionCache() SessionCache {
	return &memorySessionCache{sessions: make(map[string]*domain.User)}
}

func (c *memorySessionCache) Put(_ context.Context, token string, user *domain.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[token] = user
	return nil
}

func (c *memorySessionCache) Get(_ context.Context, token string) (*domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, ok := c.sessions[token]
	return user, ok
}

const redisSessionPrefix = "session:"

type redisSessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionCache returns a Redis-backed cache for deployments that want
// sessions to survive a process restart. Entries expire with the token TTL so
// Redis never holds sessions longer than the record store would honor.
func NewRedisSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &redisSessionCache{client: client, ttl: ttl}
}

func (c *redisSessionCache) Put(ctx context.Context, token string, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisSessionPrefix+token, payload, c.ttl).Err()
}

func (c *redisSessionCache) Get(ctx context.Context, token string) (*domain.User, bool) {
	payload, err := c.client.Get(ctx, redisSessionPrefix+token).Bytes()
	if err != nil {
		// Unreachable Redis degrades to "no session", the safe verdict.
		return nil, false
	}
	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, false
	}
	return &user, true
}
