package utils

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ConfirmGuard marks a checkout session as being confirmed so a second request
// for the same session can be turned away while the first is still running.
// Acquire returns a token that Release must present; a holder whose marker
// expired cannot release someone else's.
type ConfirmGuard interface {
	Acquire(ctx context.Context, sessionID string) (token string, acquired bool, err error)
	Release(ctx context.Context, sessionID, token string) error
}

// releaseScript deletes the marker only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfirmGuard keeps the in-flight marker in Redis with a TTL, so a
// crashed request cannot hold a session forever.
type RedisConfirmGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisConfirmGuard(rdb *redis.Client, ttl time.Duration) *RedisConfirmGuard {
	return &RedisConfirmGuard{rdb: rdb, ttl: ttl}
}

// NewRedisClient connects to addr and checks the connection
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		ReadTimeout: 2 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, WrapError(err, "failed to connect to redis")
	}
	return rdb, nil
}

func (g *RedisConfirmGuard) key(sessionID string) string {
	return "confirm:" + sessionID
}

func (g *RedisConfirmGuard) Acquire(ctx context.Context, sessionID string) (string, bool, error) {
	token := uuid.New().String()
	ok, err := g.rdb.SetNX(ctx, g.key(sessionID), token, g.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (g *RedisConfirmGuard) Release(ctx context.Context, sessionID, token string) error {
	return releaseScript.Run(ctx, g.rdb, []string{g.key(sessionID)}, token).Err()
}

// NoopConfirmGuard always grants the guard. Used when Redis is not configured;
// the unique transaction index still prevents duplicate payment records.
type NoopConfirmGuard struct{}

func (NoopConfirmGuard) Acquire(context.Context, string) (string, bool, error) { return "", true, nil }

func (NoopConfirmGuard) Release(context.Context, string, string) error { return nil }
