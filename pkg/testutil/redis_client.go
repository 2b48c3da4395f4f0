package testutil

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient implements xredis.Client. Unset funcs behave like an empty
// store.
type MockRedisClient struct {
	ExistFunc       func(ctx context.Context, key string) (bool, error)
	DelFunc         func(ctx context.Context, keys ...string) error
	HSetFunc        func(ctx context.Context, key string, values map[string]any) error
	HGetFunc        func(ctx context.Context, key, field string) (string, error)
	HMGetFunc       func(ctx context.Context, key string, fields ...string) ([]any, error)
	HGetAllFunc     func(ctx context.Context, key string) (map[string]string, error)
	HDelFunc        func(ctx context.Context, key string, fields ...string) error
	HIncrByFunc     func(ctx context.Context, key, field string, incr int64) (int64, error)
	SAddFunc        func(ctx context.Context, key string, members ...string) (int64, error)
	SRemFunc        func(ctx context.Context, key string, members ...string) error
	SIsMemberFunc   func(ctx context.Context, key, member string) (bool, error)
	SMembersFunc    func(ctx context.Context, key string) ([]string, error)
	TxPipelinedFunc func(ctx context.Context, fn func(pipe redis.Pipeliner) error) ([]redis.Cmder, error)
	RunScriptFunc   func(ctx context.Context, script *redis.Script, keys []string, args ...any) (int64, error)
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	return false, nil
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, keys...)
	}

	return nil
}

func (m *MockRedisClient) HSet(ctx context.Context, key string, values map[string]any) error {
	if m.HSetFunc != nil {
		return m.HSetFunc(ctx, key, values)
	}

	return nil
}

func (m *MockRedisClient) HGet(ctx context.Context, key, field string) (string, error) {
	if m.HGetFunc != nil {
		return m.HGetFunc(ctx, key, field)
	}

	return "", redis.Nil
}

func (m *MockRedisClient) HMGet(ctx context.Context, key string, fields ...string) ([]any, error) {
	if m.HMGetFunc != nil {
		return m.HMGetFunc(ctx, key, fields...)
	}

	return make([]any, len(fields)), nil
}

func (m *MockRedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.HGetAllFunc != nil {
		return m.HGetAllFunc(ctx, key)
	}

	return map[string]string{}, nil
}

func (m *MockRedisClient) HDel(ctx context.Context, key string, fields ...string) error {
	if m.HDelFunc != nil {
		return m.HDelFunc(ctx, key, fields...)
	}

	return nil
}

func (m *MockRedisClient) HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error) {
	if m.HIncrByFunc != nil {
		return m.HIncrByFunc(ctx, key, field, incr)
	}

	return incr, nil
}

func (m *MockRedisClient) SAdd(ctx context.Context, key string, members ...string) (int64, error) {
	if m.SAddFunc != nil {
		return m.SAddFunc(ctx, key, members...)
	}

	return int64(len(members)), nil
}

func (m *MockRedisClient) SRem(ctx context.Context, key string, members ...string) error {
	if m.SRemFunc != nil {
		return m.SRemFunc(ctx, key, members...)
	}

	return nil
}

func (m *MockRedisClient) SIsMember(ctx context.Context, key, member string) (bool, error) {
	if m.SIsMemberFunc != nil {
		return m.SIsMemberFunc(ctx, key, member)
	}

	return false, nil
}

func (m *MockRedisClient) SMembers(ctx context.Context, key string) ([]string, error) {
	if m.SMembersFunc != nil {
		return m.SMembersFunc(ctx, key)
	}

	return nil, nil
}

func (m *MockRedisClient) TxPipelined(
	ctx context.Context, fn func(pipe redis.Pipeliner) error,
) ([]redis.Cmder, error) {
	if m.TxPipelinedFunc != nil {
		return m.TxPipelinedFunc(ctx, fn)
	}

	return nil, nil
}

func (m *MockRedisClient) RunScript(
	ctx context.Context, script *redis.Script, keys []string, args ...any,
) (int64, error) {
	if m.RunScriptFunc != nil {
		return m.RunScriptFunc(ctx, script, keys, args...)
	}

	return 0, nil
}

func (m *MockRedisClient) Close() error {
	return nil
}
