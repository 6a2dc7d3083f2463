package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
)

func TestPaymentStatus_CanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    model.PaymentStatus
		to      model.PaymentStatus
		allowed bool
	}{
		{"pending to processing", model.PaymentStatusPending, model.PaymentStatusProcessing, true},
		{"pending to succeeded", model.PaymentStatusPending, model.PaymentStatusSucceeded, true},
		{"pending to failed", model.PaymentStatusPending, model.PaymentStatusFailed, true},
		{"pending to canceled", model.PaymentStatusPending, model.PaymentStatusCanceled, true},
		{"pending to refunded", model.PaymentStatusPending, model.PaymentStatusRefunded, false},
		{"processing to succeeded", model.PaymentStatusProcessing, model.PaymentStatusSucceeded, true},
		{"processing to pending", model.PaymentStatusProcessing, model.PaymentStatusPending, false},
		{"succeeded to refunded", model.PaymentStatusSucceeded, model.PaymentStatusRefunded, true},
		{"succeeded to failed", model.PaymentStatusSucceeded, model.PaymentStatusFailed, false},
		{"failed to succeeded", model.PaymentStatusFailed, model.PaymentStatusSucceeded, false},
		{"canceled to pending", model.PaymentStatusCanceled, model.PaymentStatusPending, false},
		{"refunded to succeeded", model.PaymentStatusRefunded, model.PaymentStatusSucceeded, false},
		{"same state", model.PaymentStatusPending, model.PaymentStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestPaymentStatus_Classification(t *testing.T) {
	assert.True(t, model.PaymentStatusPending.IsOpen())
	assert.True(t, model.PaymentStatusProcessing.IsOpen())
	assert.False(t, model.PaymentStatusSucceeded.IsOpen())

	assert.True(t, model.PaymentStatusSucceeded.IsTerminal())
	assert.True(t, model.PaymentStatusFailed.IsTerminal())
	assert.True(t, model.PaymentStatusCanceled.IsTerminal())
	assert.True(t, model.PaymentStatusRefunded.IsTerminal())
	assert.False(t, model.PaymentStatusPending.IsTerminal())
}

func TestDonation_NetAmount(t *testing.T) {
	d := &model.Donation{}
	d.SetAmount(decimal.NewFromInt(100))
	d.SetFees(decimal.NewFromFloat(3.20), decimal.NewFromInt(5))

	assert.True(t, d.NetAmount.Equal(decimal.NewFromFloat(91.80)))

	// Changing the amount keeps the identity intact.
	d.SetAmount(decimal.NewFromInt(200))
	assert.True(t, d.NetAmount.Equal(decimal.NewFromFloat(191.80)))
}

func TestCampaign_Moderation(t *testing.T) {
	t.Run("approve only from pending", func(t *testing.T) {
		c := &model.Campaign{Status: model.CampaignStatusPending}
		assert.True(t, c.Approve())
		assert.Equal(t, model.CampaignStatusApproved, c.Status)
		assert.True(t, c.Verified)

		// One-shot: a second decision is refused.
		assert.False(t, c.Approve())
		assert.False(t, c.Reject("nope"))
	})

	t.Run("reject records the reason", func(t *testing.T) {
		c := &model.Campaign{Status: model.CampaignStatusPending}
		assert.True(t, c.Reject("duplicate submission"))
		assert.Equal(t, model.CampaignStatusRejected, c.Status)
		assert.Equal(t, "duplicate submission", *c.RejectionReason)
		assert.False(t, c.Approve())
	})
}
