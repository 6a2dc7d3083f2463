package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

type UserHandler struct {
	users  *usecase.UserService
	logger *zap.Logger
}

func NewUserHandler(users *usecase.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.users.Register(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.users.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// ExternalLogin handles POST /api/auth/external, exchanging an external
// identity token for a session.
func (h *UserHandler) ExternalLogin(c echo.Context) error {
	var req dto.ExternalLoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.users.ExternalLogin(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}
	id, err := uuid.Parse(user.UserID)
	if err != nil {
		return apperrors.Unauthenticated("invalid session")
	}

	account, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return apperrors.Unauthenticated("authentication required")
	}
	id, err := uuid.Parse(user.UserID)
	if err != nil {
		return apperrors.Unauthenticated("invalid session")
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.users.UpdateProfile(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}
