package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByExternalAuthID(ctx context.Context, externalID string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	List(ctx context.Context, page entity.PaginationParams) ([]*model.User, int64, error)
}
