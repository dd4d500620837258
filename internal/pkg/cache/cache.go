package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ManuelReschke/RazorSync/internal/pkg/config"
)

// SyncLockKey guards a sync run against concurrent invocations.
const SyncLockKey = "razorsync:sync:lock"

// ErrLocked is returned when another holder owns the lock.
var ErrLocked = errors.New("lock is held by another process")

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// NewClient connects to the redis/dragonfly server and verifies the connection.
func NewClient(ctx context.Context, cfg config.Cache, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not connect to cache at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	log.Debug("connected to cache", zap.String("reply", pong))
	return client, nil
}

// Lock is a single-holder lease stored under one key. It expires after its
// TTL if the holder dies without releasing it.
type Lock struct {
	client *redis.Client
	key    string
	token  string
	ttl    time.Duration
}

func NewLock(client *redis.Client, key string, ttl time.Duration) *Lock {
	return &Lock{
		client: client,
		key:    key,
		token:  uuid.NewString(),
		ttl:    ttl,
	}
}

// Acquire takes the lock or returns ErrLocked.
func (l *Lock) Acquire(ctx context.Context) error {
	ok, err := l.client.SetNX(ctx, l.key, l.token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.key, err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Release deletes the key only if this lock still owns it.
func (l *Lock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release lock %s: %w", l.key, err)
	}
	return nil
}
