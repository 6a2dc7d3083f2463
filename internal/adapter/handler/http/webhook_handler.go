package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

// Webhook payloads above this size are rejected before verification.
const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	payments  provider.PaymentProvider
	donations *usecase.DonationService
	logger    *zap.Logger
}

func NewWebhookHandler(payments provider.PaymentProvider, donations *usecase.DonationService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		payments:  payments,
		donations: donations,
		logger:    logger,
	}
}

// Handle receives processor notifications on POST /api/webhooks/payments.
// Signature failures return 400 so the processor does not retry forged
// deliveries; processing failures return 500 so it does retry.
func (h *WebhookHandler) Handle(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		h.logger.Error("Failed to read webhook body", zap.Error(err))
		return apperrors.Validation("unreadable payload")
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	event, err := h.payments.VerifyWebhook(payload, signature)
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return apperrors.Validation("invalid webhook signature")
	}

	h.logger.Info("Webhook event received",
		zap.String("provider_event_id", event.ID),
		zap.String("type", string(event.Type)))

	if err := h.donations.HandleWebhookEvent(c.Request().Context(), event); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "received"})
}
