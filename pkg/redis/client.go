package redis

import (
	"time"

	"github.com/questx-lab/mudstore/config"
	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfigs) *redis.Client {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 5
	}

	options := &redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        poolSize,
	}

	return redis.NewClient(options)
}
