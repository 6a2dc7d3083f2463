package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a donation's payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCanceled   PaymentStatus = "canceled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Scan implements sql.Scanner interface
func (s *PaymentStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		*s = PaymentStatusPending
	}
	return nil
}

// Value implements driver.Valuer interface
func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// IsTerminal reports whether the status permits no further transition other
// than succeeded -> refunded.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusRefunded:
		return true
	}
	return false
}

// IsOpen reports whether the donation is still awaiting resolution from the
// payment processor.
func (s PaymentStatus) IsOpen() bool {
	return s == PaymentStatusPending || s == PaymentStatusProcessing
}

// CanTransition reports whether moving from s to next is a legal lifecycle
// step. Statuses move monotonically pending -> processing -> terminal, and
// succeeded -> refunded is the only post-terminal transition.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusProcessing || next == PaymentStatusSucceeded ||
			next == PaymentStatusFailed || next == PaymentStatusCanceled
	case PaymentStatusProcessing:
		return next == PaymentStatusSucceeded || next == PaymentStatusFailed ||
			next == PaymentStatusCanceled
	case PaymentStatusSucceeded:
		return next == PaymentStatusRefunded
	}
	return false
}

// Donation represents a single contribution tied to a campaign and one
// payment processor transaction.
type Donation struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CampaignID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"campaign_id"`
	DonorID                 *uuid.UUID      `gorm:"type:uuid;index" json:"donor_id,omitempty"`
	Amount                  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency                string          `gorm:"size:3;default:'USD'" json:"currency"`
	ProviderPaymentIntentID string          `gorm:"column:provider_payment_intent_id;unique;size:100" json:"provider_payment_intent_id"`
	ProviderChargeID        *string         `gorm:"column:provider_charge_id;size:100" json:"provider_charge_id,omitempty"`
	PaymentStatus           PaymentStatus   `gorm:"type:payment_status;default:'pending';index" json:"payment_status"`
	ProcessorFee            decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"processor_fee"`
	PlatformFee             decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"platform_fee"`
	NetAmount               decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"net_amount"`
	Message                 string          `gorm:"size:500" json:"message"`
	Anonymous               bool            `gorm:"default:false" json:"anonymous"`
	HideAmount              bool            `gorm:"default:false" json:"hide_amount"`
	DonorIP                 string          `gorm:"size:45" json:"-"`
	DonorCountry            string          `gorm:"size:2" json:"donor_country,omitempty"`
	FailureCode             *string         `gorm:"size:100" json:"failure_code,omitempty"`
	FailureMessage          *string         `json:"failure_message,omitempty"`
	RefundedAmount          decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"refunded_amount"`
	RefundReason            *string         `gorm:"size:255" json:"refund_reason,omitempty"`
	CompletedAt             *time.Time      `json:"completed_at,omitempty"`
	RefundedAt              *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt               time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Donation) TableName() string {
	return "donations"
}

// SetFees records the fee breakdown and recomputes the net amount. NetAmount
// always equals amount - (processor fee + platform fee).
func (d *Donation) SetFees(processorFee, platformFee decimal.Decimal) {
	d.ProcessorFee = processorFee
	d.PlatformFee = platformFee
	d.recomputeNet()
}

// SetAmount updates the gross amount and recomputes the net amount.
func (d *Donation) SetAmount(amount decimal.Decimal) {
	d.Amount = amount
	d.recomputeNet()
}

func (d *Donation) recomputeNet() {
	d.NetAmount = d.Amount.Sub(d.ProcessorFee.Add(d.PlatformFee))
}
