package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

const expiredFailureCode = "expired"

// DonationSweeper periodically cancels donations that never resolved. A
// donation left pending or processing past the stale age has been abandoned
// by the payer; its processor intent is canceled and the record marked
// failed.
type DonationSweeper struct {
	donations repository.DonationRepository
	campaigns repository.CampaignRepository
	payments  provider.PaymentProvider
	age       time.Duration
	interval  time.Duration
	logger    *zap.Logger
}

// NewDonationSweeper creates the sweeper from the fraud/lifecycle config.
func NewDonationSweeper(
	donations repository.DonationRepository,
	campaigns repository.CampaignRepository,
	payments provider.PaymentProvider,
	cfg config.FraudConfig,
	logger *zap.Logger,
) *DonationSweeper {
	return &DonationSweeper{
		donations: donations,
		campaigns: campaigns,
		payments:  payments,
		age:       cfg.StaleDonationAge,
		interval:  cfg.SweepInterval,
		logger:    logger,
	}
}

// Start runs the sweep loop until ctx is canceled.
func (s *DonationSweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("Donation sweeper started",
			zap.Duration("interval", s.interval),
			zap.Duration("stale_age", s.age))

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Donation sweeper stopped")
				return
			case <-ticker.C:
				if n, err := s.RunOnce(ctx); err != nil {
					s.logger.Error("Donation sweep failed", zap.Error(err))
				} else if n > 0 {
					s.logger.Info("Donation sweep completed", zap.Int("expired", n))
				}
			}
		}
	}()
}

// RunOnce expires every stale open donation and returns how many were marked
// failed. Per-donation errors are logged and skipped so one bad record does
// not stall the rest of the batch.
func (s *DonationSweeper) RunOnce(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.age)
	stale, err := s.donations.ListStaleOpen(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, donation := range stale {
		if err := s.payments.CancelIntent(ctx, donation.ProviderPaymentIntentID); err != nil {
			// The intent may have resolved concurrently; the webhook will
			// settle it, so leave the record for the next sweep.
			s.logger.Warn("Could not cancel stale payment intent",
				zap.String("donation_id", donation.ID.String()),
				zap.String("intent_id", donation.ProviderPaymentIntentID),
				zap.Error(err))
			continue
		}

		code := expiredFailureCode
		updated, err := s.donations.UpdateIfStatusIn(ctx, donation.ID, map[string]interface{}{
			"payment_status": model.PaymentStatusFailed,
			"failure_code":   &code,
		}, []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing})
		if err != nil {
			s.logger.Error("Failed to expire stale donation",
				zap.String("donation_id", donation.ID.String()),
				zap.Error(err))
			continue
		}
		if updated {
			expired++
			s.logger.Info("Expired stale donation",
				zap.String("donation_id", donation.ID.String()),
				zap.Time("created_at", donation.CreatedAt))
		}
	}

	return expired, nil
}
