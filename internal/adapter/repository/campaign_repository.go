package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	domainRepo "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

type campaignRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CampaignRepository {
	return &campaignRepository{db: db, logger: logger}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *model.Campaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(campaign).Error; err != nil {
		r.logger.Error("Failed to create campaign",
			zap.String("name", campaign.Name),
			zap.Error(err))
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	var campaign model.Campaign

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get campaign",
			zap.String("campaign_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *model.Campaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		r.logger.Error("Failed to update campaign",
			zap.String("campaign_id", campaign.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Campaign{}, "id = ?", id).Error; err != nil {
		r.logger.Error("Failed to delete campaign",
			zap.String("campaign_id", id.String()),
			zap.Error(err))
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) List(ctx context.Context, filter domainRepo.CampaignFilter, page entity.PaginationParams) ([]*model.Campaign, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Campaign{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count campaigns", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	var campaigns []*model.Campaign
	err := query.Order(page.OrderClause()).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&campaigns).Error
	if err != nil {
		r.logger.Error("Failed to list campaigns", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return campaigns, total, nil
}

func (r *campaignRepository) SetRaisedAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	err := r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("raised_amount", amount).Error
	if err != nil {
		r.logger.Error("Failed to set campaign raised amount",
			zap.String("campaign_id", id.String()),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return fmt.Errorf("failed to set raised amount: %w", err)
	}
	return nil
}
