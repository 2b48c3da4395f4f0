package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/questx-lab/mudstore/internal/common"
	"github.com/questx-lab/mudstore/internal/entity"
	"github.com/questx-lab/mudstore/pkg/xcontext"
	"github.com/questx-lab/mudstore/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type UserRepository interface {
	// Create returns false without touching the store when username or
	// pwhash is empty.
	Create(ctx context.Context, username, pwhash string) (bool, error)
	GetList(ctx context.Context) ([]string, error)
	Get(ctx context.Context, username string) (*entity.User, error)
	CheckPassword(ctx context.Context, username, pwhash string) error
}

type userRepository struct {
	redisClient xredis.Client
}

func NewUserRepository(redisClient xredis.Client) UserRepository {
	return &userRepository{redisClient: redisClient}
}

func (r *userRepository) Create(ctx context.Context, username, pwhash string) (bool, error) {
	if username == "" || pwhash == "" {
		return false, nil
	}

	// The number of added members doubles as the existence check.
	added, err := r.redisClient.SAdd(ctx, common.UsersKey, username)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add user %s to index: %v", username, err)
		return false, fmt.Errorf("add user %s: %w", username, err)
	}

	if added == 0 {
		return false, ErrUserAlreadyExists
	}

	user := entity.User{Username: username, PwHash: pwhash}
	if err := r.redisClient.HSet(ctx, common.BuildUserCode(username), entity.ToHash(user)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write user %s: %v", username, err)
		return false, fmt.Errorf("write user %s: %w", username, err)
	}

	return true, nil
}

func (r *userRepository) GetList(ctx context.Context) ([]string, error) {
	users, err := r.redisClient.SMembers(ctx, common.UsersKey)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list users: %v", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Get(ctx context.Context, username string) (*entity.User, error) {
	hash, err := r.redisClient.HGetAll(ctx, common.BuildUserCode(username))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user %s: %v", username, err)
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}

	if len(hash) == 0 {
		return nil, ErrUserNotFound
	}

	var user entity.User
	if err := entity.FromHash(hash, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) CheckPassword(ctx context.Context, username, pwhash string) error {
	stored, err := r.redisClient.HGet(ctx, common.BuildUserCode(username), entity.UserPasswordHashField)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrUserPasswordNoMatch
		}

		xcontext.Logger(ctx).Errorf("Cannot get password hash of %s: %v", username, err)
		return fmt.Errorf("get password hash of %s: %w", username, err)
	}

	if stored != pwhash {
		return ErrUserPasswordNoMatch
	}

	return nil
}
