package repository

import (
	"context"
	"time"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
)

// AnalyticsRepository runs the read-only dashboard aggregations on the
// database side rather than folding full collections in memory.
type AnalyticsRepository interface {
	CampaignCountsByStatus(ctx context.Context) ([]entity.StatusCount, error)
	CampaignCountsByCategory(ctx context.Context) ([]entity.CategoryCount, error)
	DonationAggregatesByStatus(ctx context.Context) ([]entity.DonationStatusAggregate, error)
	UserCountsByRole(ctx context.Context) ([]entity.RoleCount, error)
	PlatformTotals(ctx context.Context) (*entity.PlatformTotals, error)
	// DonationTrend returns daily buckets of succeeded donations inside
	// [from, to). Days without donations are absent from the result.
	DonationTrend(ctx context.Context, from, to time.Time) ([]entity.TrendPoint, error)
}
