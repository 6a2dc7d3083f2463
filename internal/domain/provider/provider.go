package provider

import (
	"context"
	"fmt"
	"time"
)

// EventType classifies payment processor notifications after verification.
type EventType string

const (
	EventPaymentSucceeded EventType = "payment_intent.succeeded"
	EventPaymentFailed    EventType = "payment_intent.payment_failed"
	EventPaymentCanceled  EventType = "payment_intent.canceled"
	EventChargeSucceeded  EventType = "charge.succeeded"
	EventUnknown          EventType = "unknown"
)

// CreateIntentRequest describes a payment intent to be created.
type CreateIntentRequest struct {
	// AmountMinor is the amount in the currency's minor units.
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// CreateIntentResponse is the provider handle for a created intent.
type CreateIntentResponse struct {
	IntentID     string
	ClientSecret string
}

// RefundRequest describes a refund against a previously succeeded intent.
type RefundRequest struct {
	IntentID    string
	AmountMinor int64 // 0 means full refund
	Reason      string
}

// RefundResponse reports the provider's refund record.
type RefundResponse struct {
	RefundID string
	Status   string
}

// WebhookEvent is a verified, typed payment processor notification.
type WebhookEvent struct {
	ID             string
	Type           EventType
	IntentID       string
	ChargeID       string
	FailureCode    string
	FailureMessage string
	Raw            []byte
	CreatedAt      time.Time
}

// ProviderError carries a provider-side failure code.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// PaymentProvider abstracts the payment processor boundary: intents, refunds
// and webhook signature verification.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResponse, error)
	CancelIntent(ctx context.Context, intentID string) error
	CreateRefund(ctx context.Context, req *RefundRequest) (*RefundResponse, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
