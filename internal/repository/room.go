package repository

import (
	"context"
	"fmt"

	"github.com/questx-lab/mudstore/internal/common"
	"github.com/questx-lab/mudstore/internal/entity"
	"github.com/questx-lab/mudstore/pkg/xcontext"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The next room number is size+1. It is refused when a live room already
// holds it, which happens after a room below the top was deleted.
//
// KEYS: AREAS, AREAS:<code>. ARGV: code, room key prefix, field/value pairs.
var addRoomScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
	return redis.error_reply('NOAREA area does not exist')
end
local size = tonumber(redis.call('HGET', KEYS[2], 'size') or 0)
if size == nil then
	return redis.error_reply('ERR area size is not an integer')
end
local key = ARGV[2] .. ':' .. (size + 1)
if redis.call('EXISTS', key) == 1 then
	return redis.error_reply('ROOMTAKEN ' .. key .. ' already exists')
end
local n = redis.call('HINCRBY', KEYS[2], 'size', 1)
redis.call('HSET', key, 'areacode', ARGV[1], 'roomnumber', n)
for i = 3, #ARGV, 2 do
	redis.call('HSET', key, ARGV[i], ARGV[i + 1])
end
return n
`)

// KEYS: AREAS:<code>. ARGV: room key prefix.
var reserveRoomScript = redis.NewScript(`
local size = tonumber(redis.call('HGET', KEYS[1], 'size') or 0)
if size == nil then
	return redis.error_reply('ERR area size is not an integer')
end
local key = ARGV[1] .. ':' .. (size + 1)
if redis.call('EXISTS', key) == 1 then
	return redis.error_reply('ROOMTAKEN ' .. key .. ' already exists')
end
return redis.call('HINCRBY', KEYS[1], 'size', 1)
`)

// Returns the new size, 0 when the area went with its last room, or -1 when
// the area is no longer indexed and so was left untouched.
//
// KEYS: room, room exits, AREAS:<code>, AREAS. ARGV: code.
var deleteRoomScript = redis.NewScript(`
if redis.call('DEL', KEYS[1]) == 0 then
	return redis.error_reply('NOROOM room does not exist')
end
redis.call('DEL', KEYS[2])
if redis.call('SISMEMBER', KEYS[4], ARGV[1]) == 0 then
	return -1
end
local size = redis.call('HINCRBY', KEYS[3], 'size', -1)
if size <= 0 then
	redis.call('DEL', KEYS[3])
	redis.call('SREM', KEYS[4], ARGV[1])
	return 0
end
return size
`)

type RoomRepository interface {
	// Add reserves the next room number of the area and writes the room in
	// one atomic step.
	Add(ctx context.Context, areaCode string, data entity.Room) (int, error)

	// ReserveNumber consumes the next room number of the area. The number
	// stays consumed even if the following Set never happens. Add and
	// ReserveNumber fail with ErrRoomNumberTaken instead of handing out the
	// number of a live room.
	ReserveNumber(ctx context.Context, areaCode string) (int, error)

	Set(ctx context.Context, areaCode string, roomNumber int, data entity.Room) error
	Get(ctx context.Context, areaCode string, roomNumber int) (*entity.Room, error)

	// Delete removes the room and its exit table and shrinks the area. When
	// the area size reaches 0 the area is deleted too and
	// entity.DeleteStatusAreaDeleted is returned.
	Delete(ctx context.Context, areaCode string, roomNumber int) (entity.DeleteStatus, error)

	SetConnection(ctx context.Context, command string, source, destination entity.RoomRef) error
	UnsetConnection(ctx context.Context, command string, source entity.RoomRef) error
	Connect(ctx context.Context, a, b entity.Exit) error
	Disconnect(ctx context.Context, a, b entity.RoomRef) error

	// SetExits writes the exits whose destination room exists and returns
	// them. Exits pointing at missing rooms are dropped.
	SetExits(ctx context.Context, source entity.RoomRef, exits map[string]string) (map[string]string, error)
}

type roomRepository struct {
	redisClient xredis.Client
}

func NewRoomRepository(redisClient xredis.Client) RoomRepository {
	return &roomRepository{redisClient: redisClient}
}

func (r *roomRepository) Add(ctx context.Context, areaCode string, data entity.Room) (int, error) {
	code := common.ExtractAreaCode(areaCode)
	if code == "" {
		return 0, ErrEmptyAreaCode
	}

	fields := entity.ToHashPatch(data)
	delete(fields, entity.AreaCodeField)
	delete(fields, entity.RoomNumberField)

	args := append([]any{code, common.BuildCode(common.RoomsKey, code)}, hashArgs(fields)...)

	keys := []string{common.AreasKey, common.BuildAreaCode(code)}
	n, err := r.redisClient.RunScript(ctx, addRoomScript, keys, args...)
	if err != nil {
		if isScriptError(err, scriptErrNoArea) {
			return 0, ErrCreateBadAreaCode
		}

		if isScriptError(err, scriptErrRoomTaken) {
			xcontext.Logger(ctx).Warnf("Cannot add room to area %s: %v", code, err)
			return 0, ErrRoomNumberTaken
		}

		xcontext.Logger(ctx).Errorf("Cannot add room to area %s: %v", code, err)
		return 0, fmt.Errorf("add room to area %s: %w", code, err)
	}

	return int(n), nil
}

func (r *roomRepository) ReserveNumber(ctx context.Context, areaCode string) (int, error) {
	code := common.ExtractAreaCode(areaCode)
	if code == "" {
		return 0, ErrEmptyAreaCode
	}

	keys := []string{common.BuildAreaCode(code)}
	n, err := r.redisClient.RunScript(ctx, reserveRoomScript, keys, common.BuildCode(common.RoomsKey, code))
	if err != nil {
		if isScriptError(err, scriptErrRoomTaken) {
			xcontext.Logger(ctx).Warnf("Cannot reserve room number in area %s: %v", code, err)
			return 0, ErrRoomNumberTaken
		}

		xcontext.Logger(ctx).Errorf("Cannot reserve room number in area %s: %v", code, err)
		return 0, fmt.Errorf("reserve room number in area %s: %w", code, err)
	}

	return int(n), nil
}

func (r *roomRepository) Set(ctx context.Context, areaCode string, roomNumber int, data entity.Room) error {
	code := common.ExtractAreaCode(areaCode)
	if code == "" {
		return ErrEmptyAreaCode
	}

	if roomNumber < 1 {
		return ErrInvalidRoomNumber
	}

	fields := entity.ToHashPatch(data)
	fields[entity.AreaCodeField] = code
	fields[entity.RoomNumberField] = roomNumber

	roomCode := common.BuildRoomCode(code, roomNumber)
	if err := r.redisClient.HSet(ctx, roomCode, fields); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set room %s: %v", roomCode, err)
		return fmt.Errorf("set room %s: %w", roomCode, err)
	}

	return nil
}

func (r *roomRepository) Get(ctx context.Context, areaCode string, roomNumber int) (*entity.Room, error) {
	roomCode := common.BuildRoomCode(areaCode, roomNumber)

	var roomCmd, exitsCmd *redis.MapStringStringCmd
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		roomCmd = pipe.HGetAll(ctx, roomCode)
		exitsCmd = pipe.HGetAll(ctx, common.ConvertRoomToExitsCode(roomCode))
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get room %s: %v", roomCode, err)
		return nil, fmt.Errorf("get room %s: %w", roomCode, err)
	}

	if len(roomCmd.Val()) == 0 {
		return nil, ErrRoomNotFound
	}

	return entity.RoomFromHash(roomCmd.Val(), exitsCmd.Val())
}

func (r *roomRepository) Delete(
	ctx context.Context, areaCode string, roomNumber int,
) (entity.DeleteStatus, error) {
	code := common.ExtractAreaCode(areaCode)
	roomCode := common.BuildRoomCode(code, roomNumber)

	keys := []string{
		roomCode,
		common.ConvertRoomToExitsCode(roomCode),
		common.BuildAreaCode(code),
		common.AreasKey,
	}

	size, err := r.redisClient.RunScript(ctx, deleteRoomScript, keys, code)
	if err != nil {
		if isScriptError(err, scriptErrNoRoom) {
			return entity.DeleteStatusOK, ErrRoomNotFound
		}

		xcontext.Logger(ctx).Errorf("Cannot delete room %s: %v", roomCode, err)
		return entity.DeleteStatusOK, fmt.Errorf("delete room %s: %w", roomCode, err)
	}

	switch {
	case size == 0:
		xcontext.Logger(ctx).Infof("Area %s deleted with its last room %s", code, roomCode)
		return entity.DeleteStatusAreaDeleted, nil
	case size < 0:
		xcontext.Logger(ctx).Infof("Room %s deleted from unindexed area %s", roomCode, code)
	}

	return entity.DeleteStatusOK, nil
}

func (r *roomRepository) SetConnection(
	ctx context.Context, command string, source, destination entity.RoomRef,
) error {
	if command == "" {
		return ErrEmptyCommand
	}

	sourceCode, err := entity.ResolveRoomCode(source)
	if err != nil {
		return err
	}

	destinationCode, err := entity.ResolveRoomCode(destination)
	if err != nil {
		return err
	}

	exitsCode := common.ConvertRoomToExitsCode(sourceCode)
	err = r.redisClient.HSet(ctx, exitsCode, map[string]any{command: destinationCode})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set exit %s of %s: %v", command, sourceCode, err)
		return fmt.Errorf("set exit %s of %s: %w", command, sourceCode, err)
	}

	return nil
}

func (r *roomRepository) UnsetConnection(ctx context.Context, command string, source entity.RoomRef) error {
	if command == "" {
		return ErrEmptyCommand
	}

	sourceCode, err := entity.ResolveRoomCode(source)
	if err != nil {
		return err
	}

	if err := r.redisClient.HDel(ctx, common.ConvertRoomToExitsCode(sourceCode), command); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unset exit %s of %s: %v", command, sourceCode, err)
		return fmt.Errorf("unset exit %s of %s: %w", command, sourceCode, err)
	}

	return nil
}

func (r *roomRepository) Connect(ctx context.Context, a, b entity.Exit) error {
	if a.Command == "" || b.Command == "" {
		return ErrEmptyCommand
	}

	codeA, err := entity.ResolveRoomCode(a.Source)
	if err != nil {
		return err
	}

	codeB, err := entity.ResolveRoomCode(b.Source)
	if err != nil {
		return err
	}

	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, common.ConvertRoomToExitsCode(codeA), a.Command, codeB)
		pipe.HSet(ctx, common.ConvertRoomToExitsCode(codeB), b.Command, codeA)
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot connect %s and %s: %v", codeA, codeB, err)
		return fmt.Errorf("connect %s and %s: %w", codeA, codeB, err)
	}

	return nil
}

func (r *roomRepository) Disconnect(ctx context.Context, a, b entity.RoomRef) error {
	codeA, err := entity.ResolveRoomCode(a)
	if err != nil {
		return err
	}

	codeB, err := entity.ResolveRoomCode(b)
	if err != nil {
		return err
	}

	exitsCodeA := common.ConvertRoomToExitsCode(codeA)
	exitsCodeB := common.ConvertRoomToExitsCode(codeB)

	var exitsA, exitsB *redis.MapStringStringCmd
	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		exitsA = pipe.HGetAll(ctx, exitsCodeA)
		exitsB = pipe.HGetAll(ctx, exitsCodeB)
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read exits of %s and %s: %v", codeA, codeB, err)
		return fmt.Errorf("read exits of %s and %s: %w", codeA, codeB, err)
	}

	commandA := commandTo(exitsA.Val(), codeB)
	commandB := commandTo(exitsB.Val(), codeA)
	if commandA == "" || commandB == "" {
		return ErrRoomsNotConnected
	}

	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, exitsCodeA, commandA)
		pipe.HDel(ctx, exitsCodeB, commandB)
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot disconnect %s and %s: %v", codeA, codeB, err)
		return fmt.Errorf("disconnect %s and %s: %w", codeA, codeB, err)
	}

	return nil
}

func (r *roomRepository) SetExits(
	ctx context.Context, source entity.RoomRef, exits map[string]string,
) (map[string]string, error) {
	sourceCode, err := entity.ResolveRoomCode(source)
	if err != nil {
		return nil, err
	}

	if len(exits) == 0 {
		return map[string]string{}, nil
	}

	commands := maps.Keys(exits)
	slices.Sort(commands)

	existCmds := make([]*redis.IntCmd, len(commands))
	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, command := range commands {
			existCmds[i] = pipe.Exists(ctx, exits[command])
		}
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot validate exits of %s: %v", sourceCode, err)
		return nil, fmt.Errorf("validate exits of %s: %w", sourceCode, err)
	}

	valid := map[string]string{}
	fields := map[string]any{}
	for i, command := range commands {
		if command == "" || existCmds[i].Val() == 0 {
			xcontext.Logger(ctx).Debugf("Drop exit %q of %s to missing room %s", command, sourceCode, exits[command])
			continue
		}

		valid[command] = exits[command]
		fields[command] = exits[command]
	}

	if err := r.redisClient.HSet(ctx, common.ConvertRoomToExitsCode(sourceCode), fields); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set exits of %s: %v", sourceCode, err)
		return nil, fmt.Errorf("set exits of %s: %w", sourceCode, err)
	}

	return valid, nil
}

// commandTo returns the command in exits that leads to roomCode. When several
// do, the alphabetically first one wins.
func commandTo(exits map[string]string, roomCode string) string {
	commands := maps.Keys(exits)
	slices.Sort(commands)
	for _, command := range commands {
		if exits[command] == roomCode {
			return command
		}
	}

	return ""
}
