package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
)

// CampaignService implements campaign CRUD and moderation.
type CampaignService struct {
	campaigns repository.CampaignRepository
	donations repository.DonationRepository
	logger    *zap.Logger
}

// NewCampaignService creates the campaign service.
func NewCampaignService(
	campaigns repository.CampaignRepository,
	donations repository.DonationRepository,
	logger *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		donations: donations,
		logger:    logger,
	}
}

// Create persists a new campaign in the pending moderation state.
func (s *CampaignService) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateCampaignRequest) (*model.Campaign, error) {
	campaign := &model.Campaign{
		CreatorID:   creatorID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		GoalAmount:  decimal.NewFromFloat(req.GoalAmount),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      model.CampaignStatusPending,
	}

	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("Campaign created",
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("creator_id", creatorID.String()))

	return campaign, nil
}

// GetByID returns a campaign by id.
func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperrors.NotFound("campaign not found")
	}
	return campaign, nil
}

// List returns a filtered page of campaigns.
func (s *CampaignService) List(ctx context.Context, filter repository.CampaignFilter, page entity.PaginationParams) ([]*model.Campaign, int64, error) {
	page.Validate("created_at", "name", "goal_amount", "raised_amount", "end_date")
	return s.campaigns.List(ctx, filter, page)
}

// Update applies the owner-editable fields. Only the creator or an admin may
// update a campaign; the raised amount and moderation status are never
// touched here.
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, actor *auth.AuthUser, req *dto.UpdateCampaignRequest) (*model.Campaign, error) {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(campaign, actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Category != nil {
		campaign.Category = *req.Category
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.ImageURL != nil {
		campaign.ImageURL = *req.ImageURL
	}
	if req.VideoURL != nil {
		campaign.VideoURL = *req.VideoURL
	}
	if req.GoalAmount != nil {
		campaign.GoalAmount = decimal.NewFromFloat(*req.GoalAmount)
	}
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = *req.EndDate
	}
	if campaign.EndDate.Before(campaign.StartDate) {
		return nil, apperrors.Validation("end date must be after start date")
	}

	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete removes a campaign. Only the creator or an admin may delete one.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID, actor *auth.AuthUser) error {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(campaign, actor); err != nil {
		return err
	}

	if err := s.campaigns.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Campaign deleted",
		zap.String("campaign_id", id.String()),
		zap.String("actor_id", actor.UserID))
	return nil
}

// Approve moves a pending campaign to approved. Moderation is one-shot:
// approving a campaign that already left pending is an invalid state error.
func (s *CampaignService) Approve(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !campaign.Approve() {
		return nil, apperrors.InvalidState("campaign has already been moderated")
	}
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("Campaign approved", zap.String("campaign_id", id.String()))
	return campaign, nil
}

// Reject moves a pending campaign to rejected with an optional reason.
func (s *CampaignService) Reject(ctx context.Context, id uuid.UUID, reason string) (*model.Campaign, error) {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !campaign.Reject(reason) {
		return nil, apperrors.InvalidState("campaign has already been moderated")
	}
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("Campaign rejected",
		zap.String("campaign_id", id.String()),
		zap.String("reason", reason))
	return campaign, nil
}

// RecomputeRaised refreshes the campaign's raised amount from its succeeded
// donations. Exposed for admin reconciliation.
func (s *CampaignService) RecomputeRaised(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sum, err := s.donations.SumSucceededByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	if err := s.campaigns.SetRaisedAmount(ctx, campaign.ID, sum); err != nil {
		return nil, err
	}

	campaign.RaisedAmount = sum
	return campaign, nil
}

func (s *CampaignService) authorize(campaign *model.Campaign, actor *auth.AuthUser) error {
	if actor == nil {
		return apperrors.Unauthenticated("authentication required")
	}
	if actor.Role == model.RoleAdmin || campaign.CreatorID.String() == actor.UserID {
		return nil
	}
	return apperrors.Forbidden("you do not own this campaign")
}
