package stripe

import (
	"context"
	"encoding/json"
	"time"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/refund"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
)

// Provider implements provider.PaymentProvider on the Stripe API.
type Provider struct {
	webhookSecret string
	logger        *zap.Logger
}

// NewProvider creates a Stripe-backed payment provider. The secret key is
// installed process-wide, matching how the stripe-go bindings are keyed.
func NewProvider(secretKey, webhookSecret string, logger *zap.Logger) *Provider {
	stripego.Key = secretKey

	return &Provider{
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

func (p *Provider) CreateIntent(ctx context.Context, req *provider.CreateIntentRequest) (*provider.CreateIntentResponse, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(req.AmountMinor),
		Currency: stripego.String(req.Currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		p.logger.Error("Failed to create payment intent",
			zap.Int64("amount_minor", req.AmountMinor),
			zap.String("currency", req.Currency),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "INTENT_CREATE_FAILED",
			Message: err.Error(),
		}
	}

	return &provider.CreateIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (p *Provider) CancelIntent(ctx context.Context, intentID string) error {
	params := &stripego.PaymentIntentCancelParams{}
	params.Context = ctx

	if _, err := paymentintent.Cancel(intentID, params); err != nil {
		p.logger.Error("Failed to cancel payment intent",
			zap.String("intent_id", intentID),
			zap.Error(err))
		return &provider.ProviderError{
			Code:    "INTENT_CANCEL_FAILED",
			Message: err.Error(),
		}
	}
	return nil
}

func (p *Provider) CreateRefund(ctx context.Context, req *provider.RefundRequest) (*provider.RefundResponse, error) {
	params := &stripego.RefundParams{
		PaymentIntent: stripego.String(req.IntentID),
	}
	params.Context = ctx
	if req.AmountMinor > 0 {
		params.Amount = stripego.Int64(req.AmountMinor)
	}
	if req.Reason != "" {
		params.Reason = stripego.String(req.Reason)
	}

	ref, err := refund.New(params)
	if err != nil {
		p.logger.Error("Failed to create refund",
			zap.String("intent_id", req.IntentID),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "REFUND_FAILED",
			Message: err.Error(),
		}
	}

	return &provider.RefundResponse{
		RefundID: ref.ID,
		Status:   string(ref.Status),
	}, nil
}

// VerifyWebhook checks the payload signature and maps the Stripe event into
// the domain event shape the donation service consumes.
func (p *Provider) VerifyWebhook(payload []byte, signature string) (*provider.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		p.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		p.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "SIGNATURE_INVALID",
			Message: err.Error(),
		}
	}

	out := &provider.WebhookEvent{
		ID:        event.ID,
		Type:      provider.EventUnknown,
		Raw:       event.Data.Raw,
		CreatedAt: time.Unix(event.Created, 0),
	}

	switch event.Type {
	case stripego.EventTypePaymentIntentSucceeded,
		stripego.EventTypePaymentIntentPaymentFailed,
		stripego.EventTypePaymentIntentCanceled:
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, &provider.ProviderError{
				Code:    "PAYLOAD_INVALID",
				Message: err.Error(),
			}
		}
		out.Type = provider.EventType(event.Type)
		out.IntentID = intent.ID
		if intent.LastPaymentError != nil {
			out.FailureCode = string(intent.LastPaymentError.Code)
			out.FailureMessage = intent.LastPaymentError.Msg
		}

	case stripego.EventTypeChargeSucceeded:
		var charge stripego.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, &provider.ProviderError{
				Code:    "PAYLOAD_INVALID",
				Message: err.Error(),
			}
		}
		out.Type = provider.EventChargeSucceeded
		out.ChargeID = charge.ID
		if charge.PaymentIntent != nil {
			out.IntentID = charge.PaymentIntent.ID
		}

	default:
		p.logger.Debug("Unhandled webhook event type",
			zap.String("type", string(event.Type)))
	}

	return out, nil
}
