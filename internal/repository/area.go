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

// AreaRepository accepts area codes either raw (KDV) or qualified (AREAS:KDV).
// KEYS: AREAS, AREAS:<code>. ARGV: code, field/value pairs.
var createAreaScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
	return redis.error_reply('AREAEXISTS area already exists')
end
for i = 2, #ARGV, 2 do
	redis.call('HSET', KEYS[2], ARGV[i], ARGV[i + 1])
end
redis.call('SADD', KEYS[1], ARGV[1])
return 1
`)

type AreaRepository interface {
	Create(ctx context.Context, areaCode string, data entity.Area) error
	Update(ctx context.Context, areaCode string, patch entity.Area) (*entity.Area, error)
	Get(ctx context.Context, areaCode string) (*entity.Area, error)
	GetList(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, areaCode string) (bool, error)
	Delete(ctx context.Context, areaCode string) error
}

type areaRepository struct {
	redisClient xredis.Client
}

func NewAreaRepository(redisClient xredis.Client) AreaRepository {
	return &areaRepository{redisClient: redisClient}
}

func (r *areaRepository) Create(ctx context.Context, areaCode string, data entity.Area) error {
	code := common.ExtractAreaCode(areaCode)
	if code == "" {
		return ErrEmptyAreaCode
	}

	if data.AreaCode != "" && common.ExtractAreaCode(data.AreaCode) != code {
		return ErrCreateAreaCodeMismatch
	}
	data.AreaCode = code

	keys := []string{common.AreasKey, common.BuildAreaCode(code)}
	args := append([]any{code}, hashArgs(entity.ToHash(data))...)
	if _, err := r.redisClient.RunScript(ctx, createAreaScript, keys, args...); err != nil {
		if isScriptError(err, scriptErrAreaExists) {
			return ErrAreaAlreadyExists
		}

		xcontext.Logger(ctx).Errorf("Cannot create area %s: %v", code, err)
		return fmt.Errorf("create area %s: %w", code, err)
	}

	return nil
}

func (r *areaRepository) Update(ctx context.Context, areaCode string, patch entity.Area) (*entity.Area, error) {
	code := common.ExtractAreaCode(areaCode)

	fields := entity.ToHashPatch(patch)
	delete(fields, entity.AreaCodeField)
	delete(fields, entity.AreaSizeField)

	exists, err := r.Exists(ctx, code)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, ErrUpdateAreaNoExist
	}

	if err := r.redisClient.HSet(ctx, common.BuildAreaCode(code), fields); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update area %s: %v", code, err)
		return nil, fmt.Errorf("update area %s: %w", code, err)
	}

	return r.Get(ctx, code)
}

func (r *areaRepository) Get(ctx context.Context, areaCode string) (*entity.Area, error) {
	hash, err := r.redisClient.HGetAll(ctx, common.BuildAreaCode(areaCode))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get area %s: %v", areaCode, err)
		return nil, fmt.Errorf("get area %s: %w", areaCode, err)
	}

	if len(hash) == 0 {
		return nil, ErrAreaNotFound
	}

	return entity.AreaFromHash(hash)
}

func (r *areaRepository) GetList(ctx context.Context) ([]string, error) {
	codes, err := r.redisClient.SMembers(ctx, common.AreasKey)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list areas: %v", err)
		return nil, fmt.Errorf("list areas: %w", err)
	}

	return codes, nil
}

func (r *areaRepository) Exists(ctx context.Context, areaCode string) (bool, error) {
	code := common.ExtractAreaCode(areaCode)
	ok, err := r.redisClient.SIsMember(ctx, common.AreasKey, code)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check area %s: %v", code, err)
		return false, fmt.Errorf("check area %s: %w", code, err)
	}

	return ok, nil
}

// Delete removes the area from the index and drops its hash in one
// transaction. Rooms of the area are not touched.
func (r *areaRepository) Delete(ctx context.Context, areaCode string) error {
	code := common.ExtractAreaCode(areaCode)
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, common.AreasKey, code)
		pipe.Del(ctx, common.BuildAreaCode(code))
		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete area %s: %v", code, err)
		return fmt.Errorf("delete area %s: %w", code, err)
	}

	return nil
}
