package redisad

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"hotel_console/internal/adapters/observability"
)

const keyPrefix = "hotel-console:"

// KV keeps the console session in Redis so several operator machines can
// share one login.
type KV struct{ c *redis.Client }

func New(addr, pass string, db int) *KV {
	return &KV{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *KV) Get(ctx context.Context, name string) (string, bool, error) {
	v, err := r.c.Get(ctx, keyPrefix+name).Result()
	if errors.Is(err, redis.Nil) {
		observability.ObserveKV("redis", "miss")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	observability.ObserveKV("redis", "hit")
	return v, true, nil
}

func (r *KV) Set(ctx context.Context, name, value string) error {
	observability.ObserveKV("redis", "set")
	return r.c.Set(ctx, keyPrefix+name, value, 0).Err()
}

func (r *KV) Del(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = keyPrefix + n
	}
	observability.ObserveKV("redis", "del")
	return r.c.Del(ctx, keys...).Err()
}

func (r *KV) Close() error { return r.c.Close() }
