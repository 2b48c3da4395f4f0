package repository

import (
	"context"
	"fmt"

	"github.com/questx-lab/mudstore/internal/common"
	"github.com/questx-lab/mudstore/internal/entity"
	"github.com/questx-lab/mudstore/pkg/xcontext"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

// KEYS: CHARACTERS, USER:<username>:CH, CHAR:<name>. ARGV: name, field/value
// pairs.
var createCharacterScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 or redis.call('SISMEMBER', KEYS[2], ARGV[1]) == 1 then
	return redis.error_reply('CHEXISTS character already exists')
end
redis.call('SADD', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[2], ARGV[1])
for i = 2, #ARGV, 2 do
	redis.call('HSET', KEYS[3], ARGV[i], ARGV[i + 1])
end
return 1
`)

type CharacterRepository interface {
	// Create returns false without touching the store when any argument is
	// empty. A name already taken globally or by the user fails with
	// ErrCharacterAlreadyExists.
	Create(ctx context.Context, username, characterName, defaultRoomCode string) (bool, error)
	GetList(ctx context.Context) ([]string, error)
	GetListByUser(ctx context.Context, username string) ([]string, error)
	Get(ctx context.Context, characterName string) (*entity.Character, error)
	UpdateRoom(ctx context.Context, characterName, roomCode string) error
}

type characterRepository struct {
	redisClient xredis.Client
}

func NewCharacterRepository(redisClient xredis.Client) CharacterRepository {
	return &characterRepository{redisClient: redisClient}
}

func (r *characterRepository) Create(
	ctx context.Context, username, characterName, defaultRoomCode string,
) (bool, error) {
	if username == "" || characterName == "" || defaultRoomCode == "" {
		return false, nil
	}

	character := entity.NewDefaultCharacter(characterName, username, defaultRoomCode)

	keys := []string{
		common.CharactersKey,
		common.BuildUserCharacterCode(username),
		common.BuildCharacterCode(characterName),
	}
	args := append([]any{characterName}, hashArgs(entity.ToHash(character))...)
	if _, err := r.redisClient.RunScript(ctx, createCharacterScript, keys, args...); err != nil {
		if isScriptError(err, scriptErrCharExists) {
			return false, ErrCharacterAlreadyExists
		}

		xcontext.Logger(ctx).Errorf("Cannot create character %s: %v", characterName, err)
		return false, fmt.Errorf("create character %s: %w", characterName, err)
	}

	return true, nil
}

func (r *characterRepository) GetList(ctx context.Context) ([]string, error) {
	names, err := r.redisClient.SMembers(ctx, common.CharactersKey)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list characters: %v", err)
		return nil, fmt.Errorf("list characters: %w", err)
	}

	return names, nil
}

func (r *characterRepository) GetListByUser(ctx context.Context, username string) ([]string, error) {
	names, err := r.redisClient.SMembers(ctx, common.BuildUserCharacterCode(username))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list characters of %s: %v", username, err)
		return nil, fmt.Errorf("list characters of %s: %w", username, err)
	}

	return names, nil
}

func (r *characterRepository) Get(ctx context.Context, characterName string) (*entity.Character, error) {
	hash, err := r.redisClient.HGetAll(ctx, common.BuildCharacterCode(characterName))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get character %s: %v", characterName, err)
		return nil, fmt.Errorf("get character %s: %w", characterName, err)
	}

	if len(hash) == 0 {
		return nil, ErrCharacterNotFound
	}

	var character entity.Character
	if err := entity.FromHash(hash, &character); err != nil {
		return nil, err
	}

	return &character, nil
}

func (r *characterRepository) UpdateRoom(ctx context.Context, characterName, roomCode string) error {
	err := r.redisClient.HSet(ctx, common.BuildCharacterCode(characterName),
		map[string]any{entity.CharacterRoomField: roomCode})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot move character %s to %s: %v", characterName, roomCode, err)
		return fmt.Errorf("move character %s: %w", characterName, err)
	}

	return nil
}
