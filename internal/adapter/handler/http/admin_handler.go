package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

// AdminHandler groups the moderation, user administration and analytics
// endpoints. All routes behind it require the admin role.
type AdminHandler struct {
	campaigns *usecase.CampaignService
	users     *usecase.UserService
	analytics *usecase.AnalyticsService
	logger    *zap.Logger
}

func NewAdminHandler(
	campaigns *usecase.CampaignService,
	users *usecase.UserService,
	analytics *usecase.AnalyticsService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		campaigns: campaigns,
		users:     users,
		analytics: analytics,
		logger:    logger,
	}
}

// ApproveCampaign handles POST /api/admin/campaigns/:id/approve.
func (h *AdminHandler) ApproveCampaign(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	campaign, err := h.campaigns.Approve(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// RejectCampaign handles POST /api/admin/campaigns/:id/reject.
func (h *AdminHandler) RejectCampaign(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	var req dto.RejectCampaignRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.campaigns.Reject(c.Request().Context(), id, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// RecomputeCampaign handles POST /api/admin/campaigns/:id/recompute,
// refreshing the raised amount from succeeded donations.
func (h *AdminHandler) RecomputeCampaign(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid campaign id")
	}

	campaign, err := h.campaigns.RecomputeRaised(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var page entity.PaginationParams
	if err := c.Bind(&page); err != nil {
		return apperrors.Validation("invalid pagination parameters")
	}

	items, total, err := h.users.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	page.Validate()
	return c.JSON(http.StatusOK, dto.UserListResponse{
		Items:      items,
		Pagination: entity.NewPaginationMeta(page.Page, page.Size, total),
	})
}

// UpdateUserRole handles PUT /api/admin/users/:id/role.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid user id")
	}

	var req dto.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// AnalyticsOverview handles GET /api/admin/analytics/overview.
func (h *AdminHandler) AnalyticsOverview(c echo.Context) error {
	overview, err := h.analytics.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// DonationTrend handles GET /api/admin/analytics/trend?days=30.
func (h *AdminHandler) DonationTrend(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apperrors.Validation("invalid days parameter")
		}
		days = parsed
	}

	series, err := h.analytics.DonationTrend(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}
