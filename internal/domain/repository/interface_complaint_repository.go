package repository

import (
	"context"

	"engelsiz-ankara-backend/internal/domain/model"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	GetByID(ctx context.Context, id int) (*model.Complaint, error)
	GetAll(ctx context.Context) ([]model.Complaint, error)
	GetByUserID(ctx context.Context, userID int) ([]model.Complaint, error)
	Update(ctx context.Context, complaint *model.Complaint) error
}
