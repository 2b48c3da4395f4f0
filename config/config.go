package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Redis RedisConfigs `toml:"redis"`
	Log   LogConfigs   `toml:"log"`
}

type RedisConfigs struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}

func Default() Configs {
	return Configs{
		Env: "local",
		Redis: RedisConfigs{
			Addr:     "localhost:6379",
			PoolSize: 5,
		},
		Log: LogConfigs{Level: "INFO"},
	}
}

// Load reads the TOML file at path on top of the defaults and then applies
// MUD_* environment overrides. An empty path or a missing file leaves the
// defaults in place.
func Load(path string) (Configs, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Configs{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Configs) error {
	if v := os.Getenv("MUD_ENV"); v != "" {
		cfg.Env = v
	}

	if v := os.Getenv("MUD_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	if v := os.Getenv("MUD_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	if v := os.Getenv("MUD_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MUD_REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = db
	}

	if v := os.Getenv("MUD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return nil
}
