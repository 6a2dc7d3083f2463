package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

func TestAnalyticsService_Overview(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAnalyticsRepository)
	svc := usecase.NewAnalyticsService(repo, zap.NewNop())

	repo.On("PlatformTotals", ctx).Return(&entity.PlatformTotals{
		TotalRaised:     decimal.NewFromInt(125000),
		TotalGoal:       decimal.NewFromInt(900000),
		SucceededCount:  412,
		ActiveCampaigns: 17,
	}, nil)
	repo.On("CampaignCountsByStatus", ctx).Return([]entity.StatusCount{
		{Status: "approved", Count: 17},
		{Status: "pending", Count: 4},
	}, nil)
	repo.On("CampaignCountsByCategory", ctx).Return([]entity.CategoryCount{
		{Category: "education", Count: 9},
	}, nil)
	repo.On("DonationAggregatesByStatus", ctx).Return([]entity.DonationStatusAggregate{
		{Status: "succeeded", Count: 412, Total: decimal.NewFromInt(125000)},
	}, nil)
	repo.On("UserCountsByRole", ctx).Return([]entity.RoleCount{
		{Role: "user", Count: 300},
		{Role: "admin", Count: 2},
	}, nil)

	overview, err := svc.Overview(ctx)

	assert.NoError(t, err)
	assert.True(t, overview.Totals.TotalRaised.Equal(decimal.NewFromInt(125000)))
	assert.Len(t, overview.CampaignsByStatus, 2)
	assert.Len(t, overview.UsersByRole, 2)
	repo.AssertExpectations(t)
}

func TestAnalyticsService_DonationTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("fills days without donations with zero buckets", func(t *testing.T) {
		repo := new(MockAnalyticsRepository)
		svc := usecase.NewAnalyticsService(repo, zap.NewNop())

		today := time.Now().UTC().Truncate(24 * time.Hour)
		repo.On("DonationTrend", ctx, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1)).
			Return([]entity.TrendPoint{
				{Date: today.AddDate(0, 0, -3), Count: 2, Total: decimal.NewFromInt(75)},
				{Date: today, Count: 1, Total: decimal.NewFromInt(10)},
			}, nil)

		series, err := svc.DonationTrend(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, series, 7)
		assert.True(t, series[0].Date.Before(series[6].Date))

		// The two active days keep their values.
		assert.Equal(t, int64(2), series[3].Count)
		assert.Equal(t, int64(1), series[6].Count)

		// Everything else is zero-filled so the series stays contiguous.
		for _, i := range []int{0, 1, 2, 4, 5} {
			assert.Equal(t, int64(0), series[i].Count)
			assert.True(t, series[i].Total.IsZero())
		}
	})

	t.Run("defaults to thirty days", func(t *testing.T) {
		repo := new(MockAnalyticsRepository)
		svc := usecase.NewAnalyticsService(repo, zap.NewNop())

		today := time.Now().UTC().Truncate(24 * time.Hour)
		repo.On("DonationTrend", ctx, today.AddDate(0, 0, -29), today.AddDate(0, 0, 1)).
			Return([]entity.TrendPoint{}, nil)

		series, err := svc.DonationTrend(ctx, 0)

		assert.NoError(t, err)
		assert.Len(t, series, 30)
	})

	t.Run("rejects oversized windows", func(t *testing.T) {
		repo := new(MockAnalyticsRepository)
		svc := usecase.NewAnalyticsService(repo, zap.NewNop())

		_, err := svc.DonationTrend(ctx, 5000)

		assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
	})
}
