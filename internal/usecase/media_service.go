package usecase

import (
	"context"
	"io"

	"go.uber.org/zap"

	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
)

// MaxUploadSize is the media upload limit in bytes.
const MaxUploadSize = 10 << 20

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
}

// MediaService validates and stores campaign media.
type MediaService struct {
	storage provider.MediaStorage
	logger  *zap.Logger
}

// NewMediaService creates the media service.
func NewMediaService(storage provider.MediaStorage, logger *zap.Logger) *MediaService {
	return &MediaService{storage: storage, logger: logger}
}

// Upload validates the file and stores it, returning the public URL.
func (s *MediaService) Upload(ctx context.Context, folder, filename, contentType string, size int64, body io.Reader) (string, error) {
	if !allowedUploadTypes[contentType] {
		return "", apperrors.Validation("unsupported media type " + contentType)
	}
	if size > MaxUploadSize {
		return "", apperrors.Validation("file exceeds the 10MB upload limit")
	}

	url, err := s.storage.Upload(ctx, &provider.UploadInput{
		Body:        io.LimitReader(body, MaxUploadSize),
		ContentType: contentType,
		Folder:      folder,
		Filename:    filename,
	})
	if err != nil {
		return "", apperrors.Upstream("media storage unavailable", err)
	}

	s.logger.Info("Media uploaded",
		zap.String("folder", folder),
		zap.String("content_type", contentType),
		zap.Int64("size", size))
	return url, nil
}

// Delete removes a previously uploaded object by its public URL.
func (s *MediaService) Delete(ctx context.Context, publicURL string) error {
	if err := s.storage.Delete(ctx, publicURL); err != nil {
		return apperrors.Upstream("media storage unavailable", err)
	}
	return nil
}
