package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

type DonationHandler struct {
	donations *usecase.DonationService
	logger    *zap.Logger
}

func NewDonationHandler(donations *usecase.DonationService, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{
		donations: donations,
		logger:    logger,
	}
}

// Create handles POST /api/donations. Runs behind optional auth: anonymous
// donors are accepted, authenticated ones get the donation attached to their
// account.
func (h *DonationHandler) Create(c echo.Context) error {
	var req dto.CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var donorID *uuid.UUID
	if user, err := auth.GetUserFromContext(c); err == nil {
		if id, parseErr := uuid.Parse(user.UserID); parseErr == nil {
			donorID = &id
		}
	}

	resp, err := h.donations.Create(c.Request().Context(), &req, donorID, c.RealIP())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/donations/:id.
func (h *DonationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid donation id")
	}

	donation, err := h.donations.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donation)
}

// ListMine handles GET /api/donations/mine for the authenticated donor.
func (h *DonationHandler) ListMine(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}
	donorID, err := uuid.Parse(user.UserID)
	if err != nil {
		return apperrors.Unauthenticated("invalid session")
	}

	var page entity.PaginationParams
	if err := c.Bind(&page); err != nil {
		return apperrors.Validation("invalid pagination parameters")
	}

	items, total, err := h.donations.ListByDonor(c.Request().Context(), donorID, page)
	if err != nil {
		return err
	}

	page.Validate()
	return c.JSON(http.StatusOK, dto.DonationListResponse{
		Items:      items,
		Pagination: entity.NewPaginationMeta(page.Page, page.Size, total),
	})
}

// Refund handles POST /api/admin/donations/:id/refund.
func (h *DonationHandler) Refund(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("invalid donation id")
	}

	var req dto.RefundDonationRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	donation, err := h.donations.Refund(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donation)
}
