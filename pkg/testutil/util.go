package testutil

import (
	"context"
	"os"

	"github.com/questx-lab/mudstore/config"
	"github.com/questx-lab/mudstore/pkg/logger"
	"github.com/questx-lab/mudstore/pkg/xcontext"
)

func MockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, config.Default())
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	return ctx
}

func EnableIntegrationTest() bool {
	return len(os.Getenv("RUN_INTEGRATION_TEST")) > 0
}
