package xcontext

import (
	"context"

	"github.com/questx-lab/mudstore/config"
	"github.com/questx-lab/mudstore/pkg/logger"
)

type (
	loggerKey  struct{}
	configsKey struct{}
)

var nopLogger = logger.NewNopLogger()

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger stored in ctx, or a logger that discards
// everything.
func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok || l == nil {
		return nopLogger
	}

	return l
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Default()
	}

	return cfg
}
