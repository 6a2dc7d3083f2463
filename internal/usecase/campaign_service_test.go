package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

func newCampaignService(t *testing.T) (*usecase.CampaignService, *MockCampaignRepository, *MockDonationRepository) {
	t.Helper()
	campaigns := new(MockCampaignRepository)
	donations := new(MockDonationRepository)
	return usecase.NewCampaignService(campaigns, donations, zap.NewNop()), campaigns, donations
}

func TestCampaignService_Create(t *testing.T) {
	ctx := context.Background()
	svc, campaigns, _ := newCampaignService(t)
	creatorID := uuid.New()

	var persisted *model.Campaign
	campaigns.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*model.Campaign)
	}).Return(nil)

	start := time.Now()
	campaign, err := svc.Create(ctx, creatorID, &dto.CreateCampaignRequest{
		Name:       "School library rebuild",
		Category:   "education",
		GoalAmount: 25000,
		StartDate:  start,
		EndDate:    start.AddDate(0, 2, 0),
	})

	assert.NoError(t, err)
	assert.Equal(t, model.CampaignStatusPending, campaign.Status)
	assert.Equal(t, creatorID, campaign.CreatorID)
	assert.False(t, campaign.Verified)
	assert.True(t, persisted.RaisedAmount.IsZero())
}

func TestCampaignService_Moderation(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a pending campaign once", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := &model.Campaign{ID: uuid.New(), Status: model.CampaignStatusPending}

		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)
		campaigns.On("Update", ctx, mock.MatchedBy(func(c *model.Campaign) bool {
			return c.Status == model.CampaignStatusApproved && c.Verified
		})).Return(nil)

		approved, err := svc.Approve(ctx, campaign.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.CampaignStatusApproved, approved.Status)
		campaigns.AssertExpectations(t)
	})

	t.Run("refuses to approve an already approved campaign", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := &model.Campaign{ID: uuid.New(), Status: model.CampaignStatusApproved}
		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)

		_, err := svc.Approve(ctx, campaign.ID)

		assert.Equal(t, apperrors.ErrInvalidState, apperrors.CodeOf(err))
		campaigns.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("refuses to reject a rejected campaign", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := &model.Campaign{ID: uuid.New(), Status: model.CampaignStatusRejected}
		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)

		_, err := svc.Reject(ctx, campaign.ID, "dup")

		assert.Equal(t, apperrors.ErrInvalidState, apperrors.CodeOf(err))
	})

	t.Run("rejection records the reason", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := &model.Campaign{ID: uuid.New(), Status: model.CampaignStatusPending}

		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)
		campaigns.On("Update", ctx, mock.Anything).Return(nil)

		rejected, err := svc.Reject(ctx, campaign.ID, "incomplete documentation")

		assert.NoError(t, err)
		assert.Equal(t, model.CampaignStatusRejected, rejected.Status)
		assert.Equal(t, "incomplete documentation", *rejected.RejectionReason)
	})

	t.Run("approve of missing campaign is not found", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		id := uuid.New()
		campaigns.On("GetByID", ctx, id).Return(nil, nil)

		_, err := svc.Approve(ctx, id)

		assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
	})
}

func TestCampaignService_Update(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()

	ownedCampaign := func() *model.Campaign {
		return &model.Campaign{
			ID:         uuid.New(),
			CreatorID:  creatorID,
			Name:       "Original name",
			GoalAmount: decimal.NewFromInt(1000),
			StartDate:  time.Now(),
			EndDate:    time.Now().AddDate(0, 1, 0),
			Status:     model.CampaignStatusApproved,
		}
	}

	t.Run("creator can update own campaign", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := ownedCampaign()
		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)
		campaigns.On("Update", ctx, mock.Anything).Return(nil)

		name := "Updated name"
		updated, err := svc.Update(ctx, campaign.ID, &auth.AuthUser{
			UserID: creatorID.String(),
			Role:   model.RoleUser,
		}, &dto.UpdateCampaignRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Updated name", updated.Name)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := ownedCampaign()
		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)

		name := "Hijacked"
		_, err := svc.Update(ctx, campaign.ID, &auth.AuthUser{
			UserID: uuid.NewString(),
			Role:   model.RoleUser,
		}, &dto.UpdateCampaignRequest{Name: &name})

		assert.Equal(t, apperrors.ErrForbidden, apperrors.CodeOf(err))
		campaigns.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin can update any campaign", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := ownedCampaign()
		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)
		campaigns.On("Update", ctx, mock.Anything).Return(nil)

		name := "Moderated name"
		_, err := svc.Update(ctx, campaign.ID, &auth.AuthUser{
			UserID: uuid.NewString(),
			Role:   model.RoleAdmin,
		}, &dto.UpdateCampaignRequest{Name: &name})

		assert.NoError(t, err)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		svc, campaigns, _ := newCampaignService(t)
		campaign := ownedCampaign()
		campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)

		badEnd := campaign.StartDate.AddDate(0, 0, -1)
		_, err := svc.Update(ctx, campaign.ID, &auth.AuthUser{
			UserID: creatorID.String(),
			Role:   model.RoleUser,
		}, &dto.UpdateCampaignRequest{EndDate: &badEnd})

		assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
	})
}

func TestCampaignService_RecomputeRaised(t *testing.T) {
	ctx := context.Background()
	svc, campaigns, donations := newCampaignService(t)

	campaign := &model.Campaign{ID: uuid.New(), Status: model.CampaignStatusApproved}
	sum := decimal.NewFromFloat(1234.56)

	campaigns.On("GetByID", ctx, campaign.ID).Return(campaign, nil)
	donations.On("SumSucceededByCampaign", ctx, campaign.ID).Return(sum, nil)
	campaigns.On("SetRaisedAmount", ctx, campaign.ID, sum).Return(nil)

	result, err := svc.RecomputeRaised(ctx, campaign.ID)

	assert.NoError(t, err)
	assert.True(t, result.RaisedAmount.Equal(sum))
	campaigns.AssertExpectations(t)
}
