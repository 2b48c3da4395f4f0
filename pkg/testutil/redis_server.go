package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// NewRedisClient returns a client on an empty store. It starts an in-process
// Redis unless RUN_INTEGRATION_TEST is set, in which case it flushes the
// database at MUD_REDIS_ADDR.
func NewRedisClient(t *testing.T) xredis.Client {
	t.Helper()

	var redisClient *redis.Client
	if EnableIntegrationTest() {
		addr := os.Getenv("MUD_REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}

		redisClient = redis.NewClient(&redis.Options{Addr: addr})
		require.NoError(t, redisClient.FlushDB(context.Background()).Err())
	} else {
		server := miniredis.RunT(t)
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	}

	client := xredis.Wrap(redisClient)
	t.Cleanup(func() { client.Close() })
	return client
}
