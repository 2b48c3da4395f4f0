package lookup

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/questx-lab/mudstore/internal/common"
	"github.com/questx-lab/mudstore/internal/entity"
	"github.com/questx-lab/mudstore/pkg/errorx"
	"github.com/questx-lab/mudstore/pkg/xcontext"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

var ErrAdminAreaNoRooms = errorx.New(errorx.EmptyReport, "area has no rooms")

// Lookup builds read-only room tables for administration tools. Room slots
// are walked from 1 to the area size, so a room deleted from the middle of a
// live area shows up as a missing entry and the highest room drops out of the
// table.
type Lookup interface {
	// RoomTableByArea maps room codes of the area to "<number>: <name>".
	RoomTableByArea(ctx context.Context, areaCode string) (map[string]string, error)

	// AllRoomsTable maps area code to RoomTableByArea of every indexed area.
	// Areas without rooms are left out.
	AllRoomsTable(ctx context.Context) (map[string]map[string]string, error)
}

type lookup struct {
	redisClient xredis.Client
}

func New(redisClient xredis.Client) *lookup {
	return &lookup{redisClient: redisClient}
}

func (l *lookup) RoomTableByArea(ctx context.Context, areaCode string) (map[string]string, error) {
	code := common.ExtractAreaCode(areaCode)

	rawSize, err := l.redisClient.HGet(ctx, common.BuildAreaCode(code), entity.AreaSizeField)
	if err != nil && !errors.Is(err, redis.Nil) {
		xcontext.Logger(ctx).Errorf("Cannot get size of area %s: %v", code, err)
		return nil, fmt.Errorf("get size of area %s: %w", code, err)
	}

	size, err := strconv.Atoi(rawSize)
	if err != nil || size <= 0 {
		return nil, ErrAdminAreaNoRooms
	}

	roomCmds := make([]*redis.SliceCmd, size)
	_, err = l.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i := range roomCmds {
			roomCmds[i] = pipe.HMGet(ctx, common.BuildRoomCode(code, i+1),
				entity.RoomNumberField, entity.RoomNameField)
		}
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rooms of area %s: %v", code, err)
		return nil, fmt.Errorf("get rooms of area %s: %w", code, err)
	}

	table := map[string]string{}
	for _, cmd := range roomCmds {
		addRoomLabel(table, code, cmd.Val())
	}

	return table, nil
}

func (l *lookup) AllRoomsTable(ctx context.Context) (map[string]map[string]string, error) {
	areaCodes, err := l.redisClient.SMembers(ctx, common.AreasKey)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list areas: %v", err)
		return nil, fmt.Errorf("list areas: %w", err)
	}

	table := map[string]map[string]string{}
	if len(areaCodes) == 0 {
		return table, nil
	}

	sizeCmds := make([]*redis.SliceCmd, len(areaCodes))
	_, err = l.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, code := range areaCodes {
			sizeCmds[i] = pipe.HMGet(ctx, common.BuildAreaCode(code), entity.AreaSizeField)
		}
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get area sizes: %v", err)
		return nil, fmt.Errorf("get area sizes: %w", err)
	}

	type slot struct {
		areaCode   string
		roomNumber int
		cmd        *redis.SliceCmd
	}

	var slots []slot
	for i, code := range areaCodes {
		size := parseSize(sizeCmds[i].Val())
		for n := 1; n <= size; n++ {
			slots = append(slots, slot{areaCode: code, roomNumber: n})
		}
	}

	if len(slots) == 0 {
		return table, nil
	}

	_, err = l.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i := range slots {
			slots[i].cmd = pipe.HMGet(ctx, common.BuildRoomCode(slots[i].areaCode, slots[i].roomNumber),
				entity.RoomNumberField, entity.RoomNameField)
		}
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rooms of all areas: %v", err)
		return nil, fmt.Errorf("get rooms of all areas: %w", err)
	}

	for _, s := range slots {
		if _, ok := table[s.areaCode]; !ok {
			table[s.areaCode] = map[string]string{}
		}
		addRoomLabel(table[s.areaCode], s.areaCode, s.cmd.Val())
	}

	for code, rooms := range table {
		if len(rooms) == 0 {
			delete(table, code)
		}
	}

	return table, nil
}

// addRoomLabel adds the entry for one HMGET roomnumber name reply. Missing
// rooms are skipped.
func addRoomLabel(table map[string]string, areaCode string, values []any) {
	if len(values) < 2 || values[0] == nil {
		return
	}

	rawNumber, _ := values[0].(string)
	number, err := strconv.Atoi(rawNumber)
	if err != nil {
		return
	}

	name, _ := values[1].(string)
	table[common.BuildRoomCode(areaCode, number)] = fmt.Sprintf("%d: %s", number, name)
}

func parseSize(values []any) int {
	if len(values) == 0 || values[0] == nil {
		return 0
	}

	raw, _ := values[0].(string)
	size, err := strconv.Atoi(raw)
	if err != nil || size < 0 {
		return 0
	}

	return size
}
