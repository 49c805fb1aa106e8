package repository

import (
	"context"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByDiscordID(ctx context.Context, discordID string) (*entity.User, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return xcontext.DB(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	err := xcontext.DB(ctx).Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByDiscordID(ctx context.Context, discordID string) (*entity.User, error) {
	var result entity.User
	err := xcontext.DB(ctx).Take(&result, "discord_id=?", discordID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
