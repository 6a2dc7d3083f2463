package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

// Donation amount bounds. These are ordinary input validation, separate from
// the fraud heuristics.
var (
	minDonationAmount = decimal.NewFromInt(1)
	maxDonationAmount = decimal.NewFromInt(100000)
)

// genericRejection is returned for fraud-gate rejections. It deliberately
// does not reveal which heuristic fired.
const genericRejection = "unable to process your donation"

// DonationService drives the donation payment lifecycle: intent creation,
// webhook reconciliation and refunds.
type DonationService struct {
	donations repository.DonationRepository
	campaigns repository.CampaignRepository
	webhooks  repository.WebhookEventRepository
	payments  provider.PaymentProvider
	limiter   provider.RateLimiter
	geo       provider.GeoResolver
	fraud     config.FraudConfig
	fees      FeePolicy
	logger    *zap.Logger
}

// FeePolicy computes the platform's fee breakdown for a donation amount.
type FeePolicy struct {
	PlatformFeePercent  decimal.Decimal
	ProcessorFeePercent decimal.Decimal
	ProcessorFeeFixed   decimal.Decimal
}

// NewFeePolicy builds a fee policy from the service configuration.
func NewFeePolicy(cfg *config.ServiceConfig) FeePolicy {
	return FeePolicy{
		PlatformFeePercent:  decimal.NewFromFloat(cfg.PlatformFeePercent),
		ProcessorFeePercent: decimal.NewFromFloat(cfg.ProcessorFeePercent),
		ProcessorFeeFixed:   decimal.NewFromFloat(cfg.ProcessorFeeFixed),
	}
}

func (p FeePolicy) platformFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.PlatformFeePercent).Div(decimal.NewFromInt(100)).Round(2)
}

func (p FeePolicy) processorFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.ProcessorFeePercent).Div(decimal.NewFromInt(100)).Add(p.ProcessorFeeFixed).Round(2)
}

// NewDonationService creates the donation service.
func NewDonationService(
	donations repository.DonationRepository,
	campaigns repository.CampaignRepository,
	webhooks repository.WebhookEventRepository,
	payments provider.PaymentProvider,
	limiter provider.RateLimiter,
	geo provider.GeoResolver,
	fraud config.FraudConfig,
	fees FeePolicy,
	logger *zap.Logger,
) *DonationService {
	return &DonationService{
		donations: donations,
		campaigns: campaigns,
		webhooks:  webhooks,
		payments:  payments,
		limiter:   limiter,
		geo:       geo,
		fraud:     fraud,
		fees:      fees,
		logger:    logger,
	}
}

// Create validates and admits a donation, creates the processor payment
// intent and persists the pending record. The fraud gate runs before the
// processor is ever contacted.
func (s *DonationService) Create(ctx context.Context, req *dto.CreateDonationRequest, donorID *uuid.UUID, donorIP string) (*dto.CreateDonationResponse, error) {
	amount := decimal.NewFromFloat(req.Amount)
	if amount.LessThan(minDonationAmount) || amount.GreaterThan(maxDonationAmount) {
		return nil, apperrors.Validation("donation amount must be between 1 and 100000")
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return nil, apperrors.Validation("invalid campaign id")
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperrors.NotFound("campaign not found")
	}
	if campaign.Status != model.CampaignStatusApproved {
		return nil, apperrors.InvalidState("campaign is not accepting donations")
	}

	if err := s.admit(ctx, amount, donorIP); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}

	donationID := uuid.New()
	intent, err := s.payments.CreateIntent(ctx, &provider.CreateIntentRequest{
		AmountMinor: amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency:    strings.ToLower(currency),
		Metadata: map[string]string{
			"campaign_id": campaign.ID.String(),
			"donation_id": donationID.String(),
		},
	})
	if err != nil {
		return nil, apperrors.Upstream("payment processor rejected the request", err)
	}

	donation := &model.Donation{
		ID:                      donationID,
		CampaignID:              campaign.ID,
		DonorID:                 donorID,
		Currency:                currency,
		ProviderPaymentIntentID: intent.IntentID,
		PaymentStatus:           model.PaymentStatusPending,
		Message:                 req.Message,
		Anonymous:               req.Anonymous,
		HideAmount:              req.HideAmount,
		DonorIP:                 donorIP,
	}
	donation.SetAmount(amount)
	if s.geo != nil {
		donation.DonorCountry = s.geo.CountryCode(donorIP)
	}

	if err := s.donations.Create(ctx, donation); err != nil {
		// Best effort: don't leave an intent the record never references.
		if cancelErr := s.payments.CancelIntent(ctx, intent.IntentID); cancelErr != nil {
			s.logger.Error("Failed to cancel orphaned intent",
				zap.String("intent_id", intent.IntentID),
				zap.Error(cancelErr))
		}
		return nil, err
	}

	s.logger.Info("Donation created",
		zap.String("donation_id", donation.ID.String()),
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("intent_id", intent.IntentID),
		zap.String("amount", amount.String()))

	return &dto.CreateDonationResponse{
		DonationID:   donation.ID.String(),
		IntentID:     intent.IntentID,
		ClientSecret: intent.ClientSecret,
		Status:       string(donation.PaymentStatus),
	}, nil
}

// admit applies the fraud heuristics. Rejections use a generic message so the
// heuristics stay opaque to callers.
func (s *DonationService) admit(ctx context.Context, amount decimal.Decimal, donorIP string) error {
	if amount.GreaterThan(decimal.NewFromFloat(s.fraud.LargeAmountThreshold)) {
		s.logger.Warn("Donation rejected: amount over threshold",
			zap.String("amount", amount.String()),
			zap.String("donor_ip", donorIP))
		return apperrors.Validation(genericRejection)
	}

	if s.limiter != nil && donorIP != "" {
		count, err := s.limiter.Hit(ctx, "donation:ip:"+donorIP, s.fraud.IPWindow)
		if err != nil {
			// The limiter failing open is preferable to blocking all intake.
			s.logger.Error("Fraud limiter unavailable", zap.Error(err))
			return nil
		}
		if count > int64(s.fraud.MaxDonationsPerIP) {
			s.logger.Warn("Donation rejected: IP rate limit",
				zap.String("donor_ip", donorIP),
				zap.Int64("count", count))
			return apperrors.Validation(genericRejection)
		}
	}

	return nil
}

// HandleWebhookEvent reconciles a verified processor notification against the
// donation it references. Duplicate deliveries and out-of-order terminal
// events are idempotent no-ops; retries of a delivery that failed mid-flight
// reclaim the recorded event and process it again.
func (s *DonationService) HandleWebhookEvent(ctx context.Context, ev *provider.WebhookEvent) error {
	record := &model.WebhookEvent{
		ProviderEventID: ev.ID,
		EventType:       string(ev.Type),
		Status:          model.WebhookStatusPending,
		Data:            rawPayload(ev.Raw, s.logger),
	}
	claimed, err := s.webhooks.Record(ctx, record)
	if err != nil {
		return err
	}
	if !claimed {
		s.logger.Info("Duplicate webhook event ignored",
			zap.String("provider_event_id", ev.ID))
		return nil
	}

	var processErr error
	switch ev.Type {
	case provider.EventPaymentSucceeded:
		processErr = s.applySucceeded(ctx, ev.IntentID)
	case provider.EventPaymentFailed:
		processErr = s.applyTerminal(ctx, ev.IntentID, model.PaymentStatusFailed, ev.FailureCode, ev.FailureMessage)
	case provider.EventPaymentCanceled:
		processErr = s.applyTerminal(ctx, ev.IntentID, model.PaymentStatusCanceled, "", "")
	case provider.EventChargeSucceeded:
		processErr = s.attachCharge(ctx, ev.IntentID, ev.ChargeID)
	default:
		s.logger.Debug("Ignoring webhook event type", zap.String("type", string(ev.Type)))
	}

	if markErr := s.webhooks.MarkProcessed(ctx, ev.ID, processErr); markErr != nil {
		s.logger.Error("Failed to mark webhook event processed",
			zap.String("provider_event_id", ev.ID),
			zap.Error(markErr))
	}

	return processErr
}

// rawPayload decodes the processor's payload for the webhook event record.
func rawPayload(raw []byte, logger *zap.Logger) model.JSONB {
	if len(raw) == 0 {
		return nil
	}
	var payload model.JSONB
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Warn("Webhook payload is not a JSON object", zap.Error(err))
		return nil
	}
	return payload
}

func (s *DonationService) applySucceeded(ctx context.Context, intentID string) error {
	donation, err := s.donations.GetByIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if donation == nil {
		return apperrors.NotFound("no donation matches payment reference " + intentID)
	}

	if donation.PaymentStatus == model.PaymentStatusSucceeded ||
		donation.PaymentStatus == model.PaymentStatusRefunded {
		// Replayed success for an already settled donation.
		return nil
	}
	if donation.PaymentStatus.IsTerminal() {
		s.logger.Warn("Refusing status regression from webhook",
			zap.String("donation_id", donation.ID.String()),
			zap.String("status", string(donation.PaymentStatus)))
		return nil
	}

	now := time.Now()
	processorFee := s.fees.processorFee(donation.Amount)
	platformFee := s.fees.platformFee(donation.Amount)
	net := donation.Amount.Sub(processorFee.Add(platformFee))

	updated, err := s.donations.UpdateIfStatusIn(ctx, donation.ID, map[string]interface{}{
		"payment_status": model.PaymentStatusSucceeded,
		"processor_fee":  processorFee,
		"platform_fee":   platformFee,
		"net_amount":     net,
		"completed_at":   &now,
	}, []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing})
	if err != nil {
		return err
	}
	if !updated {
		// A concurrent delivery already resolved this donation.
		return nil
	}

	s.logger.Info("Donation succeeded",
		zap.String("donation_id", donation.ID.String()),
		zap.String("amount", donation.Amount.String()))

	return s.recomputeRaised(ctx, donation.CampaignID)
}

func (s *DonationService) applyTerminal(ctx context.Context, intentID string, status model.PaymentStatus, failureCode, failureMessage string) error {
	donation, err := s.donations.GetByIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if donation == nil {
		return apperrors.NotFound("no donation matches payment reference " + intentID)
	}

	if donation.PaymentStatus.IsTerminal() {
		if donation.PaymentStatus != status {
			s.logger.Warn("Refusing status regression from webhook",
				zap.String("donation_id", donation.ID.String()),
				zap.String("status", string(donation.PaymentStatus)),
				zap.String("incoming", string(status)))
		}
		return nil
	}

	updates := map[string]interface{}{
		"payment_status": status,
	}
	if failureCode != "" {
		updates["failure_code"] = &failureCode
	}
	if failureMessage != "" {
		updates["failure_message"] = &failureMessage
	}

	_, err = s.donations.UpdateIfStatusIn(ctx, donation.ID, updates,
		[]model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing})
	return err
}

func (s *DonationService) attachCharge(ctx context.Context, intentID, chargeID string) error {
	if intentID == "" || chargeID == "" {
		return nil
	}

	donation, err := s.donations.GetByIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if donation == nil {
		return apperrors.NotFound("no donation matches payment reference " + intentID)
	}

	donation.ProviderChargeID = &chargeID
	return s.donations.Update(ctx, donation)
}

// recomputeRaised overwrites the campaign's raised amount with the sum of its
// succeeded donations. Recomputing rather than incrementing keeps duplicate
// and out-of-order webhook deliveries from double counting.
func (s *DonationService) recomputeRaised(ctx context.Context, campaignID uuid.UUID) error {
	sum, err := s.donations.SumSucceededByCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	return s.campaigns.SetRaisedAmount(ctx, campaignID, sum)
}

// Refund refunds a succeeded donation, optionally partially.
func (s *DonationService) Refund(ctx context.Context, donationID uuid.UUID, req *dto.RefundDonationRequest) (*model.Donation, error) {
	donation, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperrors.NotFound("donation not found")
	}

	if donation.PaymentStatus != model.PaymentStatusSucceeded {
		return nil, apperrors.InvalidState("only succeeded donations can be refunded")
	}

	refundAmount := donation.Amount
	if req.Amount > 0 {
		refundAmount = decimal.NewFromFloat(req.Amount)
	}
	if refundAmount.GreaterThan(donation.Amount) {
		return nil, apperrors.Validation("refund amount exceeds the donation amount")
	}

	_, err = s.payments.CreateRefund(ctx, &provider.RefundRequest{
		IntentID:    donation.ProviderPaymentIntentID,
		AmountMinor: refundAmount.Mul(decimal.NewFromInt(100)).IntPart(),
		Reason:      req.Reason,
	})
	if err != nil {
		return nil, apperrors.Upstream("payment processor refund failed", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"payment_status":  model.PaymentStatusRefunded,
		"refunded_amount": refundAmount,
		"refunded_at":     &now,
	}
	if req.Reason != "" {
		reason := req.Reason
		updates["refund_reason"] = &reason
	}

	updated, err := s.donations.UpdateIfStatusIn(ctx, donation.ID, updates,
		[]model.PaymentStatus{model.PaymentStatusSucceeded})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.InvalidState("donation is no longer refundable")
	}

	s.logger.Info("Donation refunded",
		zap.String("donation_id", donation.ID.String()),
		zap.String("amount", refundAmount.String()))

	if err := s.recomputeRaised(ctx, donation.CampaignID); err != nil {
		return nil, err
	}

	return s.donations.GetByID(ctx, donation.ID)
}

// GetByID returns a donation.
func (s *DonationService) GetByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperrors.NotFound("donation not found")
	}
	return donation, nil
}

// ListByCampaign returns the campaign's donations, newest first by default.
func (s *DonationService) ListByCampaign(ctx context.Context, campaignID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	page.Validate("created_at", "amount")
	return s.donations.ListByCampaign(ctx, campaignID, page)
}

// ListByDonor returns a donor's own donations.
func (s *DonationService) ListByDonor(ctx context.Context, donorID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	page.Validate("created_at", "amount")
	return s.donations.ListByDonor(ctx, donorID, page)
}
