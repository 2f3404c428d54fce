package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
)

func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

type redisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSlotLocker serializa a seção crítica por bucket de horário com
// SetNX + TTL; a liberação confere o token via script para não soltar o
// lock de outra requisição.
func NewRedisSlotLocker(client *redis.Client, ttl time.Duration) domain.Locker {
	return &redisSlotLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *redisSlotLocker) WithSlotLock(
	ctx context.Context,
	key string,
	fn func(ctx context.Context) error,
) error {

	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire slot lock: %w", err)
	}
	if !ok {
		return domain.ErrSlotLocked
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisSlotLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release slot lock: %w", err)
	}
	return nil
}

type noopLocker struct{}

// NewNoopLocker roda a seção crítica sem serialização. Sem Redis o
// comportamento degrada para o read-then-write original.
func NewNoopLocker() domain.Locker {
	return noopLocker{}
}

func (noopLocker) WithSlotLock(
	ctx context.Context,
	_ string,
	fn func(ctx context.Context) error,
) error {
	return fn(ctx)
}
