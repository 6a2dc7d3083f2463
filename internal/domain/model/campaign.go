package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus represents the moderation state of a campaign.
type CampaignStatus string

const (
	CampaignStatusPending  CampaignStatus = "pending"
	CampaignStatusApproved CampaignStatus = "approved"
	CampaignStatusRejected CampaignStatus = "rejected"
)

// Scan implements sql.Scanner interface
func (s *CampaignStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = CampaignStatus(v)
	case []byte:
		*s = CampaignStatus(v)
	default:
		*s = CampaignStatusPending
	}
	return nil
}

// Value implements driver.Valuer interface
func (s CampaignStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Campaign represents a fundraising project with a goal and moderation status.
// RaisedAmount is derived: it is recomputed from the campaign's succeeded
// donations and never accepted from a client.
type Campaign struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"creator_id"`
	Name            string          `gorm:"size:120;not null" json:"name"`
	Category        string          `gorm:"size:50;index" json:"category"`
	Description     string          `gorm:"type:text" json:"description"`
	ImageURL        string          `gorm:"size:500" json:"image_url"`
	VideoURL        string          `gorm:"size:500" json:"video_url"`
	GoalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"goal_amount"`
	RaisedAmount    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"raised_amount"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Status          CampaignStatus  `gorm:"type:campaign_status;default:'pending';index" json:"status"`
	Verified        bool            `gorm:"default:false" json:"verified"`
	RejectionReason *string         `gorm:"size:500" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Campaign) TableName() string {
	return "campaigns"
}

// Approve marks a pending campaign approved and verified.
func (c *Campaign) Approve() bool {
	if c.Status != CampaignStatusPending {
		return false
	}
	c.Status = CampaignStatusApproved
	c.Verified = true
	return true
}

// Reject marks a pending campaign rejected, recording an optional reason.
// Moderation is a one-shot decision: terminal states never transition back.
func (c *Campaign) Reject(reason string) bool {
	if c.Status != CampaignStatusPending {
		return false
	}
	c.Status = CampaignStatusRejected
	c.Verified = false
	if reason != "" {
		c.RejectionReason = &reason
	}
	return true
}
