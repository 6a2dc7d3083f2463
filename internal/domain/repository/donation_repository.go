package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Donation, error)
	GetByIntentID(ctx context.Context, intentID string) (*model.Donation, error)
	Update(ctx context.Context, donation *model.Donation) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error)

	// UpdateIfStatusIn applies updates to the donation only while its status is
	// one of the allowed source states, returning whether a row changed.
	// Concurrent webhook deliveries and the cleanup sweep rely on it.
	UpdateIfStatusIn(ctx context.Context, id uuid.UUID, updates map[string]interface{}, from []model.PaymentStatus) (bool, error)

	// SumSucceededByCampaign recomputes the campaign's raised amount from the
	// full set of its succeeded donations.
	SumSucceededByCampaign(ctx context.Context, campaignID uuid.UUID) (decimal.Decimal, error)

	// ListStaleOpen returns donations still pending or processing that were
	// created before the cutoff.
	ListStaleOpen(ctx context.Context, cutoff time.Time) ([]*model.Donation, error)
}

type WebhookEventRepository interface {
	// Record stores a webhook event and claims it for processing. It returns
	// false only when the provider event ID was already processed to
	// completion; events whose earlier delivery is pending or failed are
	// reclaimed so the processor's retries can finish the work.
	Record(ctx context.Context, event *model.WebhookEvent) (bool, error)
	MarkProcessed(ctx context.Context, providerEventID string, processErr error) error
}
