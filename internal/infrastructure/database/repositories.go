package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/adapter/repository"
	domainRepo "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Campaign  domainRepo.CampaignRepository
	Donation  domainRepo.DonationRepository
	User      domainRepo.UserRepository
	Webhook   domainRepo.WebhookEventRepository
	Analytics domainRepo.AnalyticsRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Campaign:  repository.NewCampaignRepository(db, logger),
		Donation:  repository.NewDonationRepository(db, logger),
		User:      repository.NewUserRepository(db, logger),
		Webhook:   repository.NewWebhookEventRepository(db, logger),
		Analytics: repository.NewAnalyticsRepository(db, logger),
	}
}
