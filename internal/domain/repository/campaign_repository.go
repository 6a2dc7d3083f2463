package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
)

// CampaignFilter narrows campaign list queries.
type CampaignFilter struct {
	Status    model.CampaignStatus
	Category  string
	CreatorID *uuid.UUID
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *model.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error)
	Update(ctx context.Context, campaign *model.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter CampaignFilter, page entity.PaginationParams) ([]*model.Campaign, int64, error)
	// SetRaisedAmount overwrites the derived raised amount with a freshly
	// recomputed value.
	SetRaisedAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}
