package repository

import (
	"context"

	"engelsiz-ankara-backend/internal/domain/model"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
