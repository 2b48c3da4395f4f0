package xredis

import (
	"context"
	"errors"

	"github.com/questx-lab/mudstore/config"
	xredis "github.com/questx-lab/mudstore/pkg/redis"
	"github.com/redis/go-redis/v9"
)

// Client is the subset of Redis the world store runs on. Every method maps to
// a single Redis command except TxPipelined, which queues commands into one
// MULTI/EXEC block, and RunScript, which executes a Lua script atomically.
type Client interface {
	Exist(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, keys ...string) error

	// Hash
	HSet(ctx context.Context, key string, values map[string]any) error
	HGet(ctx context.Context, key, field string) (string, error)
	HMGet(ctx context.Context, key string, fields ...string) ([]any, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)

	// Set
	SAdd(ctx context.Context, key string, members ...string) (int64, error)
	SRem(ctx context.Context, key string, members ...string) error
	SIsMember(ctx context.Context, key, member string) (bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)

	// Atomic
	TxPipelined(ctx context.Context, fn func(pipe redis.Pipeliner) error) ([]redis.Cmder, error)
	RunScript(ctx context.Context, script *redis.Script, keys []string, args ...any) (int64, error)

	Close() error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context, cfg config.RedisConfigs) (*client, error) {
	redisClient := xredis.NewClient(cfg)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, err
	}

	return &client{redisClient: redisClient}, nil
}

// Wrap adapts an already configured go-redis client.
func Wrap(redisClient *redis.Client) *client {
	return &client{redisClient: redisClient}
}

///// COMMON FEATURE
func (c *client) Exist(ctx context.Context, key string) (bool, error) {
	n, err := c.redisClient.Exists(ctx, key).Uint64()
	if err != nil {
		return false, err
	}

	if n != 1 {
		return false, nil
	}

	return true, nil
}

func (c *client) Del(ctx context.Context, keys ...string) error {
	err := c.redisClient.Del(ctx, keys...).Err()
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}

	return err
}

func (c *client) Close() error {
	return c.redisClient.Close()
}

///// HASH
func (c *client) HSet(ctx context.Context, key string, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	return c.redisClient.HSet(ctx, key, values).Err()
}

// HGet returns redis.Nil when the key or the field does not exist.
func (c *client) HGet(ctx context.Context, key, field string) (string, error) {
	return c.redisClient.HGet(ctx, key, field).Result()
}

func (c *client) HMGet(ctx context.Context, key string, fields ...string) ([]any, error) {
	return c.redisClient.HMGet(ctx, key, fields...).Result()
}

// HGetAll returns an empty map when the key does not exist.
func (c *client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return c.redisClient.HGetAll(ctx, key).Result()
}

func (c *client) HDel(ctx context.Context, key string, fields ...string) error {
	return c.redisClient.HDel(ctx, key, fields...).Err()
}

func (c *client) HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error) {
	return c.redisClient.HIncrBy(ctx, key, field, incr).Result()
}

///// SET
func (c *client) SAdd(ctx context.Context, key string, members ...string) (int64, error) {
	return c.redisClient.SAdd(ctx, key, toAny(members)...).Result()
}

func (c *client) SRem(ctx context.Context, key string, members ...string) error {
	return c.redisClient.SRem(ctx, key, toAny(members)...).Err()
}

func (c *client) SIsMember(ctx context.Context, key, member string) (bool, error) {
	return c.redisClient.SIsMember(ctx, key, member).Result()
}

func (c *client) SMembers(ctx context.Context, key string) ([]string, error) {
	return c.redisClient.SMembers(ctx, key).Result()
}

///// ATOMIC
func (c *client) TxPipelined(
	ctx context.Context, fn func(pipe redis.Pipeliner) error,
) ([]redis.Cmder, error) {
	return c.redisClient.TxPipelined(ctx, fn)
}

func (c *client) RunScript(
	ctx context.Context, script *redis.Script, keys []string, args ...any,
) (int64, error) {
	return script.Run(ctx, c.redisClient, keys, args...).Int64()
}

func toAny(members []string) []any {
	result := make([]any, 0, len(members))
	for _, m := range members {
		result = append(result, m)
	}

	return result
}
