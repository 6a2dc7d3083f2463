package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	domainRepo "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

type donationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB, logger *zap.Logger) domainRepo.DonationRepository {
	return &donationRepository{db: db, logger: logger}
}

func (r *donationRepository) Create(ctx context.Context, donation *model.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(donation).Error; err != nil {
		r.logger.Error("Failed to create donation",
			zap.String("campaign_id", donation.CampaignID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

func (r *donationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	var donation model.Donation

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get donation",
			zap.String("donation_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	return &donation, nil
}

func (r *donationRepository) GetByIntentID(ctx context.Context, intentID string) (*model.Donation, error) {
	var donation model.Donation

	err := r.db.WithContext(ctx).
		Where("provider_payment_intent_id = ?", intentID).
		First(&donation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get donation by intent ID",
			zap.String("intent_id", intentID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get donation by intent: %w", err)
	}

	return &donation, nil
}

func (r *donationRepository) Update(ctx context.Context, donation *model.Donation) error {
	if err := r.db.WithContext(ctx).Save(donation).Error; err != nil {
		r.logger.Error("Failed to update donation",
			zap.String("donation_id", donation.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to update donation: %w", err)
	}
	return nil
}

func (r *donationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	return r.list(ctx, "campaign_id = ?", campaignID, page)
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	return r.list(ctx, "donor_id = ?", donorID, page)
}

func (r *donationRepository) list(ctx context.Context, cond string, arg uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Donation{}).Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count donations", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	var donations []*model.Donation
	err := query.Order(page.OrderClause()).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&donations).Error
	if err != nil {
		r.logger.Error("Failed to list donations", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}

	return donations, total, nil
}

func (r *donationRepository) UpdateIfStatusIn(ctx context.Context, id uuid.UUID, updates map[string]interface{}, from []model.PaymentStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("id = ? AND payment_status IN ?", id, from).
		Updates(updates)
	if res.Error != nil {
		r.logger.Error("Failed conditional donation update",
			zap.String("donation_id", id.String()),
			zap.Error(res.Error))
		return false, fmt.Errorf("failed to update donation: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

func (r *donationRepository) SumSucceededByCampaign(ctx context.Context, campaignID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ? AND payment_status = ?", campaignID, model.PaymentStatusSucceeded).
		Scan(&sum).Error
	if err != nil {
		r.logger.Error("Failed to sum succeeded donations",
			zap.String("campaign_id", campaignID.String()),
			zap.Error(err))
		return decimal.Zero, fmt.Errorf("failed to sum donations: %w", err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *donationRepository) ListStaleOpen(ctx context.Context, cutoff time.Time) ([]*model.Donation, error) {
	var donations []*model.Donation

	err := r.db.WithContext(ctx).
		Where("payment_status IN ? AND created_at < ?",
			[]model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing},
			cutoff).
		Find(&donations).Error
	if err != nil {
		r.logger.Error("Failed to list stale open donations", zap.Error(err))
		return nil, fmt.Errorf("failed to list stale donations: %w", err)
	}

	return donations, nil
}
