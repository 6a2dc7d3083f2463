package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

const maxTrendDays = 365

// AnalyticsService assembles the admin dashboard aggregates.
type AnalyticsService struct {
	analytics repository.AnalyticsRepository
	logger    *zap.Logger
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(analytics repository.AnalyticsRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, logger: logger}
}

// Overview returns the full dashboard snapshot.
func (s *AnalyticsService) Overview(ctx context.Context) (*entity.AnalyticsOverview, error) {
	totals, err := s.analytics.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.analytics.CampaignCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.analytics.CampaignCountsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	donations, err := s.analytics.DonationAggregatesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.analytics.UserCountsByRole(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.AnalyticsOverview{
		Totals:              *totals,
		CampaignsByStatus:   byStatus,
		CampaignsByCategory: byCategory,
		DonationsByStatus:   donations,
		UsersByRole:         roles,
	}, nil
}

// DonationTrend returns a daily series of succeeded donations over the last
// days, oldest bucket first. Days with no donations appear with zero values
// so the series is contiguous.
func (s *AnalyticsService) DonationTrend(ctx context.Context, days int) ([]entity.TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	if days > maxTrendDays {
		return nil, apperrors.Validation("trend window too large")
	}

	to := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -days)

	points, err := s.analytics.DonationTrend(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]entity.TrendPoint, len(points))
	for _, p := range points {
		byDay[p.Date.UTC().Truncate(24*time.Hour)] = p
	}

	series := make([]entity.TrendPoint, 0, days)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if p, ok := byDay[day]; ok {
			series = append(series, entity.TrendPoint{Date: day, Count: p.Count, Total: p.Total})
			continue
		}
		series = append(series, entity.TrendPoint{Date: day, Total: decimal.Zero})
	}

	return series, nil
}
