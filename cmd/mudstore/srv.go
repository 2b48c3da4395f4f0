package main

import (
	"context"
	"fmt"

	"github.com/questx-lab/mudstore/config"
	"github.com/questx-lab/mudstore/internal/domain/lookup"
	"github.com/questx-lab/mudstore/internal/repository"
	"github.com/questx-lab/mudstore/pkg/logger"
	"github.com/questx-lab/mudstore/pkg/xcontext"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger

	redisClient xredis.Client

	areaRepo      repository.AreaRepository
	roomRepo      repository.RoomRepository
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository

	lookup lookup.Lookup
}

// load runs every step a command needs and returns the context the
// repositories are called with.
func (s *srv) load(cliCtx *cli.Context) (context.Context, error) {
	if err := s.loadConfig(cliCtx.String("config")); err != nil {
		return nil, err
	}

	s.loadLogger()

	ctx := xcontext.WithConfigs(cliCtx.Context, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)

	if err := s.loadRedis(ctx); err != nil {
		return nil, err
	}

	s.loadRepos()
	s.loadDomains()
	return ctx, nil
}

func (s *srv) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s.configs = cfg
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.Log.Level))
}

func (s *srv) loadRedis(ctx context.Context) error {
	client, err := xredis.NewClient(ctx, s.configs.Redis)
	if err != nil {
		s.logger.Errorf("Cannot connect to redis at %s: %v", s.configs.Redis.Addr, err)
		return fmt.Errorf("connect redis: %w", err)
	}

	s.redisClient = client
	return nil
}

func (s *srv) loadRepos() {
	s.areaRepo = repository.NewAreaRepository(s.redisClient)
	s.roomRepo = repository.NewRoomRepository(s.redisClient)
	s.userRepo = repository.NewUserRepository(s.redisClient)
	s.characterRepo = repository.NewCharacterRepository(s.redisClient)
}

func (s *srv) loadDomains() {
	s.lookup = lookup.New(s.redisClient)
}

func (s *srv) close() {
	if s.redisClient != nil {
		s.redisClient.Close()
	}

	if l, ok := s.logger.(interface{ Sync() error }); ok {
		_ = l.Sync()
	}
}
