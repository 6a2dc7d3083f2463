package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	if err := createCustomTypes(db); err != nil {
		logger.Error("Failed to create custom types", zap.Error(err))
		return err
	}

	err := db.AutoMigrate(
		&model.User{},
		&model.Campaign{},
		&model.Donation{},
		&model.WebhookEvent{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

func createExtensions(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// createCustomTypes creates custom PostgreSQL enum types before auto-migrate
func createCustomTypes(db *gorm.DB) error {
	types := map[string]string{
		"campaign_status": `CREATE TYPE campaign_status AS ENUM ('pending', 'approved', 'rejected')`,
		"payment_status":  `CREATE TYPE payment_status AS ENUM ('pending', 'processing', 'succeeded', 'failed', 'canceled', 'refunded')`,
		"webhook_status":  `CREATE TYPE webhook_status AS ENUM ('pending', 'completed', 'failed')`,
	}

	for name, ddl := range types {
		var exists bool
		db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = ?)`, name).Scan(&exists)
		if !exists {
			if err := db.Exec(ddl).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// createCustomIndexes creates indexes GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// The sweep and webhook reconciliation both scan open donations by age.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_donations_open_by_age ON donations (created_at) WHERE payment_status IN ('pending', 'processing')`).Error; err != nil {
		return err
	}

	// Fraud/abuse review queries filter by donor IP over recent windows.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_donations_donor_ip ON donations (donor_ip, created_at)`).Error; err != nil {
		return err
	}

	return nil
}
