package repository

import (
	"context"

	"github.com/questx-lab/mudstore/pkg/testutil"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/stretchr/testify/suite"
)

// storeSuite gives every test an empty store and fresh repositories.
type storeSuite struct {
	suite.Suite

	ctx           context.Context
	redisClient   xredis.Client
	areaRepo      AreaRepository
	roomRepo      RoomRepository
	userRepo      UserRepository
	characterRepo CharacterRepository
}

func (s *storeSuite) SetupTest() {
	s.ctx = testutil.MockContext()
	s.redisClient = testutil.NewRedisClient(s.T())
	s.areaRepo = NewAreaRepository(s.redisClient)
	s.roomRepo = NewRoomRepository(s.redisClient)
	s.userRepo = NewUserRepository(s.redisClient)
	s.characterRepo = NewCharacterRepository(s.redisClient)
}
