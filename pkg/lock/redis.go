package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token, so an
// expired lock re-acquired by another process is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock is a shared-store lock registry backed by SET NX PX. Required
// when webhook deliveries are handled by more than one process: two
// processes must not double-apply the same notification.
//
// The token handed out by TryAcquire is the single source of holder
// identity. It travels with the caller and comes back through Release, so a
// holder that outlived its TTL releases with its own stale token and the
// compare-token script leaves the new holder's entry alone.
type RedisLock struct {
	client  *redis.Client
	prefix  string
	holdTTL time.Duration
}

// NewRedisLock creates a redis-backed lock whose entries expire after
// holdTTL, bounding the damage of a crashed holder.
func NewRedisLock(client *redis.Client, prefix string, holdTTL time.Duration) *RedisLock {
	return &RedisLock{
		client:  client,
		prefix:  prefix,
		holdTTL: holdTTL,
	}
}

func (l *RedisLock) redisKey(key string) string {
	return fmt.Sprintf("%s:lock:%s", l.prefix, key)
}

func (l *RedisLock) TryAcquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.redisKey(key), token, l.holdTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("lock acquire %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisLock) Release(ctx context.Context, key, token string) error {
	if token == "" {
		// Never held by this caller.
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{l.redisKey(key)}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("lock release %s: %w", key, err)
	}
	return nil
}
