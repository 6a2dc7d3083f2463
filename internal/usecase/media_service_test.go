package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

// MockMediaStorage is a mock implementation of MediaStorage
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, in *provider.UploadInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, publicURL string) error {
	args := m.Called(ctx, publicURL)
	return args.Error(0)
}

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an allowed image", func(t *testing.T) {
		storage := new(MockMediaStorage)
		svc := usecase.NewMediaService(storage, zap.NewNop())

		storage.On("Upload", ctx, mock.MatchedBy(func(in *provider.UploadInput) bool {
			return in.Folder == "campaigns" && in.ContentType == "image/png"
		})).Return("https://cdn.example.com/campaigns/abc.png", nil)

		url, err := svc.Upload(ctx, "campaigns", "cover.png", "image/png", 1024, strings.NewReader("png bytes"))

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/campaigns/abc.png", url)
		storage.AssertExpectations(t)
	})

	t.Run("rejects disallowed content type", func(t *testing.T) {
		storage := new(MockMediaStorage)
		svc := usecase.NewMediaService(storage, zap.NewNop())

		_, err := svc.Upload(ctx, "campaigns", "payload.exe", "application/octet-stream", 1024, strings.NewReader("x"))

		assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		storage := new(MockMediaStorage)
		svc := usecase.NewMediaService(storage, zap.NewNop())

		_, err := svc.Upload(ctx, "campaigns", "movie.mp4", "video/mp4", usecase.MaxUploadSize+1, strings.NewReader("x"))

		assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("maps storage failure to upstream error", func(t *testing.T) {
		storage := new(MockMediaStorage)
		svc := usecase.NewMediaService(storage, zap.NewNop())

		storage.On("Upload", ctx, mock.Anything).Return("", assert.AnError)

		_, err := svc.Upload(ctx, "campaigns", "cover.jpg", "image/jpeg", 1024, strings.NewReader("x"))

		assert.Equal(t, apperrors.ErrUpstream, apperrors.CodeOf(err))
	})
}
