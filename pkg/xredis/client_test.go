package xredis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *client {
	server := miniredis.RunT(t)
	c := Wrap(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClient_Hash(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.HSet(ctx, "h", map[string]any{}))
	ok, err := c.Exist(ctx, "h")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = c.HGet(ctx, "h", "a")
	require.ErrorIs(t, err, redis.Nil)

	require.NoError(t, c.HSet(ctx, "h", map[string]any{"a": "1", "b": 2}))
	v, err := c.HGet(ctx, "h", "b")
	require.NoError(t, err)
	require.Equal(t, "2", v)

	n, err := c.HIncrBy(ctx, "h", "a", 4)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)

	values, err := c.HMGet(ctx, "h", "a", "missing")
	require.NoError(t, err)
	require.Equal(t, []any{"5", nil}, values)

	require.NoError(t, c.HDel(ctx, "h", "a", "b"))
	all, err := c.HGetAll(ctx, "h")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestClient_Set(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	added, err := c.SAdd(ctx, "s", "a", "b")
	require.NoError(t, err)
	require.Equal(t, int64(2), added)

	added, err = c.SAdd(ctx, "s", "a")
	require.NoError(t, err)
	require.Equal(t, int64(0), added)

	ok, err := c.SIsMember(ctx, "s", "b")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, c.SRem(ctx, "s", "b"))
	members, err := c.SMembers(ctx, "s")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, members)

	require.NoError(t, c.Del(ctx, "s", "missing"))
}

func TestClient_RunScript(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	script := redis.NewScript(`return redis.call('HINCRBY', KEYS[1], 'n', ARGV[1])`)
	n, err := c.RunScript(ctx, script, []string{"h"}, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	failing := redis.NewScript(`return redis.error_reply('NOPE no such thing')`)
	_, err = c.RunScript(ctx, failing, nil)
	require.ErrorContains(t, err, "NOPE")
}
