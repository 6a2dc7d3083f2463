package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	domainRepo "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

type webhookEventRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB, logger *zap.Logger) domainRepo.WebhookEventRepository {
	return &webhookEventRepository{db: db, logger: logger}
}

func (r *webhookEventRepository) Record(ctx context.Context, event *model.WebhookEvent) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_event_id"}},
			DoNothing: true,
		}).
		Create(event)
	if res.Error != nil {
		r.logger.Error("Failed to record webhook event",
			zap.String("provider_event_id", event.ProviderEventID),
			zap.Error(res.Error))
		return false, fmt.Errorf("failed to record webhook event: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// The event ID was seen before. Reclaim it for processing unless the
	// earlier delivery completed; only completed rows are true duplicates.
	claim := r.db.WithContext(ctx).
		Model(&model.WebhookEvent{}).
		Where("provider_event_id = ? AND status IN ?", event.ProviderEventID,
			[]model.WebhookStatus{model.WebhookStatusPending, model.WebhookStatusFailed}).
		Update("status", model.WebhookStatusPending)
	if claim.Error != nil {
		r.logger.Error("Failed to reclaim webhook event",
			zap.String("provider_event_id", event.ProviderEventID),
			zap.Error(claim.Error))
		return false, fmt.Errorf("failed to reclaim webhook event: %w", claim.Error)
	}

	return claim.RowsAffected > 0, nil
}

func (r *webhookEventRepository) MarkProcessed(ctx context.Context, providerEventID string, processErr error) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":              model.WebhookStatusCompleted,
		"processed_at":        &now,
		"processing_attempts": gorm.Expr("processing_attempts + 1"),
	}
	if processErr != nil {
		msg := processErr.Error()
		updates["status"] = model.WebhookStatusFailed
		updates["last_error"] = &msg
	}

	err := r.db.WithContext(ctx).
		Model(&model.WebhookEvent{}).
		Where("provider_event_id = ?", providerEventID).
		Updates(updates).Error
	if err != nil {
		r.logger.Error("Failed to mark webhook event processed",
			zap.String("provider_event_id", providerEventID),
			zap.Error(err))
		return fmt.Errorf("failed to mark webhook event: %w", err)
	}
	return nil
}
