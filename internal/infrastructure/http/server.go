package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/akmalhakim05/fundizen-backend-sub000/internal/adapter/handler/http"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

// Services bundles the usecases the HTTP surface exposes.
type Services struct {
	Campaigns *usecase.CampaignService
	Donations *usecase.DonationService
	Users     *usecase.UserService
	Analytics *usecase.AnalyticsService
	Media     *usecase.MediaService
	Webhooks  *handlers.WebhookHandler
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	services *Services
	routed   bool
}

// requestValidator adapts go-playground/validator to echo's Validator
// interface, reporting failures in the API's uniform error shape.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.Validation(err.Error())
	}
	return nil
}

func NewServer(cfg *config.Config, logger *zap.Logger, services *Services) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	return &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		services: services,
	}
}

// errorHandler maps application errors onto HTTP statuses with the uniform
// {error, message} body. Unknown errors become opaque 500s.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := dto.ErrorResponse{
			Error:   apperrors.ErrInternal,
			Message: "something went wrong",
		}

		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			status = apperrors.ToHTTPStatus(appErr.Code())
			body.Error = appErr.Code()
			body.Message = appErr.Message()
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			body.Message = fmt.Sprintf("%v", httpErr.Message)
			if status == http.StatusNotFound {
				body.Error = apperrors.ErrNotFound
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Error(err))
		}

		if writeErr := c.JSON(status, body); writeErr != nil {
			logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	s.setupRoutes()
	return s.echo
}

func (s *Server) setupRoutes() {
	if s.routed {
		return
	}
	s.routed = true

	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	campaignHandler := handlers.NewCampaignHandler(s.services.Campaigns, s.services.Donations, s.logger)
	donationHandler := handlers.NewDonationHandler(s.services.Donations, s.logger)
	userHandler := handlers.NewUserHandler(s.services.Users, s.logger)
	adminHandler := handlers.NewAdminHandler(s.services.Campaigns, s.services.Users, s.services.Analytics, s.logger)
	uploadHandler := handlers.NewUploadHandler(s.services.Media, s.logger)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.Service.JWTSecret,
		Logger: s.logger,
	}
	required := auth.Required(jwtConfig)
	optional := auth.Optional(jwtConfig)
	adminOnly := auth.RequireRole(model.RoleAdmin, s.logger)

	api := s.echo.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/register", userHandler.Register)
	authGroup.POST("/login", userHandler.Login)
	authGroup.POST("/external", userHandler.ExternalLogin)

	// Campaigns: public reads run behind optional auth so admins see
	// unmoderated listings; writes require a session.
	campaigns := api.Group("/campaigns")
	campaigns.GET("", campaignHandler.List, optional)
	campaigns.GET("/mine", campaignHandler.ListMine, required)
	campaigns.GET("/:id", campaignHandler.Get, optional)
	campaigns.GET("/:id/donations", campaignHandler.Donations, optional)
	campaigns.POST("", campaignHandler.Create, required)
	campaigns.PUT("/:id", campaignHandler.Update, required)
	campaigns.DELETE("/:id", campaignHandler.Delete, required)

	// Donations: creation accepts anonymous donors.
	donations := api.Group("/donations")
	donations.POST("", donationHandler.Create, optional)
	donations.GET("/mine", donationHandler.ListMine, required)
	donations.GET("/:id", donationHandler.Get, optional)

	// Users: profile of the session holder.
	users := api.Group("/users", required)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateMe)

	// Media uploads
	api.POST("/uploads", uploadHandler.Upload, required)
	api.DELETE("/uploads", uploadHandler.Delete, required, adminOnly)

	// Processor webhooks: authenticated by signature, not session.
	api.POST("/webhooks/payments", s.services.Webhooks.Handle)

	// Admin
	admin := api.Group("/admin", required, adminOnly)
	admin.POST("/campaigns/:id/approve", adminHandler.ApproveCampaign)
	admin.POST("/campaigns/:id/reject", adminHandler.RejectCampaign)
	admin.POST("/campaigns/:id/recompute", adminHandler.RecomputeCampaign)
	admin.POST("/donations/:id/refund", donationHandler.Refund)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	admin.GET("/analytics/overview", adminHandler.AnalyticsOverview)
	admin.GET("/analytics/trend", adminHandler.DonationTrend)
}
