package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

type CampaignHandler struct {
	campaigns *usecase.CampaignService
	donations *usecase.DonationService
	logger    *zap.Logger
}

func NewCampaignHandler(campaigns *usecase.CampaignService, donations *usecase.DonationService, logger *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaigns: campaigns,
		donations: donations,
		logger:    logger,
	}
}

// Create handles POST /api/campaigns.
func (h *CampaignHandler) Create(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}

	var req dto.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	creatorID, err := uuid.Parse(user.UserID)
	if err != nil {
		return apperrors.Unauthenticated("invalid session")
	}

	campaign, err := h.campaigns.Create(c.Request().Context(), creatorID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, campaign)
}

// Get handles GET /api/campaigns/:id.
func (h *CampaignHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	campaign, err := h.campaigns.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// List handles GET /api/campaigns. Unauthenticated callers only see approved
// campaigns; admins may filter by any status.
func (h *CampaignHandler) List(c echo.Context) error {
	var page entity.PaginationParams
	if err := c.Bind(&page); err != nil {
		return apperrors.Validation("invalid pagination parameters")
	}

	filter := repository.CampaignFilter{
		Category: c.QueryParam("category"),
		Status:   model.CampaignStatusApproved,
	}

	if user, err := auth.GetUserFromContext(c); err == nil && user.Role == model.RoleAdmin {
		filter.Status = model.CampaignStatus(c.QueryParam("status"))
	}

	items, total, err := h.campaigns.List(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}

	page.Validate()
	return c.JSON(http.StatusOK, dto.CampaignListResponse{
		Items:      items,
		Pagination: entity.NewPaginationMeta(page.Page, page.Size, total),
	})
}

// ListMine handles GET /api/campaigns/mine, returning the caller's own
// campaigns in every moderation state.
func (h *CampaignHandler) ListMine(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}
	creatorID, err := uuid.Parse(user.UserID)
	if err != nil {
		return apperrors.Unauthenticated("invalid session")
	}

	var page entity.PaginationParams
	if err := c.Bind(&page); err != nil {
		return apperrors.Validation("invalid pagination parameters")
	}

	filter := repository.CampaignFilter{
		CreatorID: &creatorID,
		Status:    model.CampaignStatus(c.QueryParam("status")),
	}

	items, total, err := h.campaigns.List(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}

	page.Validate()
	return c.JSON(http.StatusOK, dto.CampaignListResponse{
		Items:      items,
		Pagination: entity.NewPaginationMeta(page.Page, page.Size, total),
	})
}

// Update handles PUT /api/campaigns/:id.
func (h *CampaignHandler) Update(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.campaigns.Update(c.Request().Context(), id, user, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// Delete handles DELETE /api/campaigns/:id.
func (h *CampaignHandler) Delete(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	if err := h.campaigns.Delete(c.Request().Context(), id, user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "campaign deleted"})
}

// Donations handles GET /api/campaigns/:id/donations.
func (h *CampaignHandler) Donations(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	var page entity.PaginationParams
	if err := c.Bind(&page); err != nil {
		return apperrors.Validation("invalid pagination parameters")
	}

	items, total, err := h.donations.ListByCampaign(c.Request().Context(), id, page)
	if err != nil {
		return err
	}

	page.Validate()
	return c.JSON(http.StatusOK, dto.DonationListResponse{
		Items:      items,
		Pagination: entity.NewPaginationMeta(page.Page, page.Size, total),
	})
}
