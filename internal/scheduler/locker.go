package scheduler

import (
	"context"
	"fmt"
	"time"

	"agri-auction/utils"

	"github.com/redis/go-redis/v9"
)

// Locker hands out a named lock to at most one holder at a time
type Locker interface {
	TryLock(ctx context.Context, key string) (unlock func(), ok bool, err error)
}

// releaseScript deletes the key only while it still holds our token
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisLocker is a Locker shared by every instance pointing at the same redis.
// The TTL bounds how long a crashed holder can block others.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, prefix: "auction:lock:"}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	token := utils.GenerateID()
	fullKey := l.prefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("scheduler: lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	unlock := func() {
		// ctx may already be cancelled when the job ends
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.client.Eval(releaseCtx, releaseScript, []string{fullKey}, token).Err(); err != nil {
			utils.Warn("failed to release scheduler lock", map[string]any{"key": key, "error": err.Error()})
		}
	}
	return unlock, true, nil
}

// NewRedisClient builds a client from address and credentials and checks it responds
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("scheduler: redis ping %s: %w", addr, err)
	}
	return client, nil
}
