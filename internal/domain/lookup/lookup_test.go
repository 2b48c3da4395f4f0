package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/questx-lab/mudstore/internal/repository"
	"github.com/questx-lab/mudstore/pkg/errorx"
	"github.com/questx-lab/mudstore/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func seedArea(t *testing.T, ctx context.Context, areaRepo repository.AreaRepository,
	roomRepo repository.RoomRepository, code string, rooms ...string,
) {
	t.Helper()

	area := testutil.KoboldValley
	area.AreaCode = code
	require.NoError(t, areaRepo.Create(ctx, code, area))

	room := testutil.WesternOverlook
	for _, name := range rooms {
		room.Name = name
		_, err := roomRepo.Add(ctx, code, room)
		require.NoError(t, err)
	}
}

func Test_lookup_RoomTableByArea(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewRedisClient(t)
	areaRepo := repository.NewAreaRepository(redisClient)
	roomRepo := repository.NewRoomRepository(redisClient)

	seedArea(t, ctx, areaRepo, roomRepo, "KDV", "Overlook", "Valley Floor", "Kobold Den")

	table, err := New(redisClient).RoomTableByArea(ctx, "AREAS:KDV")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"RM:KDV:1": "1: Overlook",
		"RM:KDV:2": "2: Valley Floor",
		"RM:KDV:3": "3: Kobold Den",
	}, table)
}

func Test_lookup_RoomTableByArea_NoRooms(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewRedisClient(t)
	areaRepo := repository.NewAreaRepository(redisClient)
	roomRepo := repository.NewRoomRepository(redisClient)

	seedArea(t, ctx, areaRepo, roomRepo, "GCV")

	l := New(redisClient)
	for _, code := range []string{"GCV", "NOPE"} {
		_, err := l.RoomTableByArea(ctx, code)
		require.ErrorIs(t, err, ErrAdminAreaNoRooms, code)
		require.True(t, errorx.Is(err, errorx.EmptyReport))
	}
}

func Test_lookup_RoomTableByArea_SkipsHoles(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewRedisClient(t)
	areaRepo := repository.NewAreaRepository(redisClient)
	roomRepo := repository.NewRoomRepository(redisClient)

	seedArea(t, ctx, areaRepo, roomRepo, "KDV", "Overlook", "Valley Floor", "Kobold Den")

	_, err := roomRepo.Delete(ctx, "KDV", 2)
	require.NoError(t, err)

	// Size is now 2, so only slots 1 and 2 are walked and room 3 drops out.
	table, err := New(redisClient).RoomTableByArea(ctx, "KDV")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"RM:KDV:1": "1: Overlook"}, table)
}

func Test_lookup_AllRoomsTable(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewRedisClient(t)
	areaRepo := repository.NewAreaRepository(redisClient)
	roomRepo := repository.NewRoomRepository(redisClient)

	l := New(redisClient)

	table, err := l.AllRoomsTable(ctx)
	require.NoError(t, err)
	require.Empty(t, table)

	seedArea(t, ctx, areaRepo, roomRepo, "KDV", "Overlook", "Valley Floor")
	seedArea(t, ctx, areaRepo, roomRepo, "GCV", "Entrance")
	seedArea(t, ctx, areaRepo, roomRepo, "EMP")

	table, err = l.AllRoomsTable(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]map[string]string{
		"KDV": {
			"RM:KDV:1": "1: Overlook",
			"RM:KDV:2": "2: Valley Floor",
		},
		"GCV": {
			"RM:GCV:1": "1: Entrance",
		},
	}, table)
}

func Test_lookup_StoreFailure(t *testing.T) {
	ctx := testutil.MockContext()
	errStoreDown := errors.New("connection refused")

	l := New(&testutil.MockRedisClient{
		HGetFunc: func(context.Context, string, string) (string, error) {
			return "2", nil
		},
		SMembersFunc: func(context.Context, string) ([]string, error) {
			return []string{"KDV"}, nil
		},
		TxPipelinedFunc: func(context.Context, func(redis.Pipeliner) error) ([]redis.Cmder, error) {
			return nil, errStoreDown
		},
	})

	_, err := l.RoomTableByArea(ctx, "KDV")
	require.ErrorIs(t, err, errStoreDown)

	_, err = l.AllRoomsTable(ctx)
	require.ErrorIs(t, err, errStoreDown)
}
