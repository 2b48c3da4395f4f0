package main

import (
	"testing"

	"github.com/questx-lab/mudstore/internal/domain/lookup"
	"github.com/questx-lab/mudstore/internal/repository"
	"github.com/questx-lab/mudstore/pkg/crypto"
	"github.com/questx-lab/mudstore/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_readWorld(t *testing.T) {
	world, err := readWorld("testdata/world.toml")
	require.NoError(t, err)

	require.Len(t, world.Areas, 2)
	require.Equal(t, "KDV", world.Areas[0].Code)
	require.Len(t, world.Areas[0].Rooms, 2)
	require.Equal(t, "Valley Floor", world.Areas[0].Rooms[1].Name)
	require.Equal(t, WorldCorridor{
		FromArea: "KDV", FromRoom: 2, FromCommand: "in",
		ToArea: "GCV", ToRoom: 1, ToCommand: "out",
	}, world.Corridors[1])
	require.Equal(t, WorldCharacter{Username: "alice", Name: "Zed", Area: "KDV", Room: 1}, world.Characters[0])

	_, err = readWorld("testdata/missing.toml")
	require.Error(t, err)
}

func Test_seeder_seed(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewRedisClient(t)

	sd := seeder{
		areaRepo:      repository.NewAreaRepository(redisClient),
		roomRepo:      repository.NewRoomRepository(redisClient),
		userRepo:      repository.NewUserRepository(redisClient),
		characterRepo: repository.NewCharacterRepository(redisClient),
	}

	world, err := readWorld("testdata/world.toml")
	require.NoError(t, err)
	require.NoError(t, sd.seed(ctx, world))

	tables, err := lookup.New(redisClient).AllRoomsTable(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]map[string]string{
		"KDV": {"RM:KDV:1": "1: Western Overlook", "RM:KDV:2": "2: Valley Floor"},
		"GCV": {"RM:GCV:1": "1: Goblin Cave Entrance"},
	}, tables)

	room, err := sd.roomRepo.Get(ctx, "KDV", 2)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"west": "RM:KDV:1", "in": "RM:GCV:1"}, room.Exits)

	require.NoError(t, sd.userRepo.CheckPassword(ctx, "alice", "5f4dcc3b5aa765d61d8327deb882cf99"))
	require.NoError(t, sd.userRepo.CheckPassword(ctx, "bob", crypto.PasswordHash("password")))

	character, err := sd.characterRepo.Get(ctx, "Zed")
	require.NoError(t, err)
	require.Equal(t, "RM:KDV:1", character.Room)

	// A second run stops at the first area that already exists.
	err = sd.seed(ctx, world)
	require.ErrorIs(t, err, repository.ErrAreaAlreadyExists)
}
