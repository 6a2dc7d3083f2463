package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

// MockDonationRepository is a mock implementation of DonationRepository
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) GetByIntentID(ctx context.Context, intentID string) (*model.Donation, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) Update(ctx context.Context, donation *model.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	args := m.Called(ctx, campaignID, page)
	return args.Get(0).([]*model.Donation), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonationRepository) ListByDonor(ctx context.Context, donorID uuid.UUID, page entity.PaginationParams) ([]*model.Donation, int64, error) {
	args := m.Called(ctx, donorID, page)
	return args.Get(0).([]*model.Donation), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonationRepository) UpdateIfStatusIn(ctx context.Context, id uuid.UUID, updates map[string]interface{}, from []model.PaymentStatus) (bool, error) {
	args := m.Called(ctx, id, updates, from)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonationRepository) SumSucceededByCampaign(ctx context.Context, campaignID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, campaignID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDonationRepository) ListStaleOpen(ctx context.Context, cutoff time.Time) ([]*model.Donation, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Donation), args.Error(1)
}

// MockCampaignRepository is a mock implementation of CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *model.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *model.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampaignRepository) List(ctx context.Context, filter repository.CampaignFilter, page entity.PaginationParams) ([]*model.Campaign, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]*model.Campaign), args.Get(1).(int64), args.Error(2)
}

func (m *MockCampaignRepository) SetRaisedAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

// MockWebhookEventRepository is a mock implementation of WebhookEventRepository
type MockWebhookEventRepository struct {
	mock.Mock
}

func (m *MockWebhookEventRepository) Record(ctx context.Context, event *model.WebhookEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookEventRepository) MarkProcessed(ctx context.Context, providerEventID string, processErr error) error {
	args := m.Called(ctx, providerEventID, processErr)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByExternalAuthID(ctx context.Context, externalID string) (*model.User, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, page entity.PaginationParams) ([]*model.User, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*model.User), args.Get(1).(int64), args.Error(2)
}

// MockPaymentProvider is a mock implementation of PaymentProvider
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, req *provider.CreateIntentRequest) (*provider.CreateIntentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.CreateIntentResponse), args.Error(1)
}

func (m *MockPaymentProvider) CancelIntent(ctx context.Context, intentID string) error {
	args := m.Called(ctx, intentID)
	return args.Error(0)
}

func (m *MockPaymentProvider) CreateRefund(ctx context.Context, req *provider.RefundRequest) (*provider.RefundResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.RefundResponse), args.Error(1)
}

func (m *MockPaymentProvider) VerifyWebhook(payload []byte, signature string) (*provider.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.WebhookEvent), args.Error(1)
}

// MockRateLimiter is a mock implementation of RateLimiter
type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	args := m.Called(ctx, key, window)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenVerifier is a mock implementation of TokenVerifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (*provider.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Identity), args.Error(1)
}

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) CampaignCountsByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.StatusCount), args.Error(1)
}

func (m *MockAnalyticsRepository) CampaignCountsByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CategoryCount), args.Error(1)
}

func (m *MockAnalyticsRepository) DonationAggregatesByStatus(ctx context.Context) ([]entity.DonationStatusAggregate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.DonationStatusAggregate), args.Error(1)
}

func (m *MockAnalyticsRepository) UserCountsByRole(ctx context.Context) ([]entity.RoleCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.RoleCount), args.Error(1)
}

func (m *MockAnalyticsRepository) PlatformTotals(ctx context.Context) (*entity.PlatformTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatformTotals), args.Error(1)
}

func (m *MockAnalyticsRepository) DonationTrend(ctx context.Context, from, to time.Time) ([]entity.TrendPoint, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]entity.TrendPoint), args.Error(1)
}
