package repository

import (
	"context"

	"engelsiz-ankara-backend/internal/domain/model"
)

type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Staff, error)
	Create(ctx context.Context, staff *model.Staff) error
	GetAll(ctx context.Context) ([]model.Staff, error)
}
