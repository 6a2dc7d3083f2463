package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	domainRepo "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

type analyticsRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB, logger *zap.Logger) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db, logger: logger}
}

func (r *analyticsRepository) CampaignCountsByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	var rows []entity.StatusCount

	err := r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to aggregate campaigns by status", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate campaigns by status: %w", err)
	}

	return rows, nil
}

func (r *analyticsRepository) CampaignCountsByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	var rows []entity.CategoryCount

	err := r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to aggregate campaigns by category", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate campaigns by category: %w", err)
	}

	return rows, nil
}

func (r *analyticsRepository) DonationAggregatesByStatus(ctx context.Context) ([]entity.DonationStatusAggregate, error) {
	var rows []entity.DonationStatusAggregate

	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("payment_status AS status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total, COALESCE(AVG(amount), 0) AS average").
		Group("payment_status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to aggregate donations by status", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate donations by status: %w", err)
	}

	return rows, nil
}

func (r *analyticsRepository) UserCountsByRole(ctx context.Context) ([]entity.RoleCount, error) {
	var rows []entity.RoleCount

	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to aggregate users by role", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate users by role: %w", err)
	}

	return rows, nil
}

func (r *analyticsRepository) PlatformTotals(ctx context.Context) (*entity.PlatformTotals, error) {
	totals := &entity.PlatformTotals{
		TotalRaised: decimal.Zero,
		TotalGoal:   decimal.Zero,
	}

	row := struct {
		Total decimal.Decimal
		Count int64
	}{}
	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("payment_status = ?", model.PaymentStatusSucceeded).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to total succeeded donations", zap.Error(err))
		return nil, fmt.Errorf("failed to total donations: %w", err)
	}
	totals.TotalRaised = row.Total
	totals.SucceededCount = row.Count

	goalRow := struct {
		Total decimal.Decimal
		Count int64
	}{}
	err = r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Select("COALESCE(SUM(goal_amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", model.CampaignStatusApproved).
		Scan(&goalRow).Error
	if err != nil {
		r.logger.Error("Failed to total campaign goals", zap.Error(err))
		return nil, fmt.Errorf("failed to total campaign goals: %w", err)
	}
	totals.TotalGoal = goalRow.Total
	totals.ActiveCampaigns = goalRow.Count

	err = r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Distinct("donor_id").
		Where("donor_id IS NOT NULL").
		Count(&totals.RegisteredDonors).Error
	if err != nil {
		r.logger.Error("Failed to count registered donors", zap.Error(err))
		return nil, fmt.Errorf("failed to count donors: %w", err)
	}

	return totals, nil
}

func (r *analyticsRepository) DonationTrend(ctx context.Context, from, to time.Time) ([]entity.TrendPoint, error) {
	var rows []entity.TrendPoint

	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("DATE_TRUNC('day', completed_at) AS date, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("payment_status = ? AND completed_at >= ? AND completed_at < ?",
			model.PaymentStatusSucceeded, from, to).
		Group("DATE_TRUNC('day', completed_at)").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to compute donation trend",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err))
		return nil, fmt.Errorf("failed to compute donation trend: %w", err)
	}

	return rows, nil
}
