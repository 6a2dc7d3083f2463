package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
)

// S3Storage implements provider.MediaStorage on an S3 bucket with public
// object URLs.
type S3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// NewS3Storage creates the media storage client.
func NewS3Storage(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, in *provider.UploadInput) (string, error) {
	ext := path.Ext(in.Filename)
	key := fmt.Sprintf("%s/%s%s", in.Folder, uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        in.Body,
		ContentType: aws.String(in.ContentType),
	})
	if err != nil {
		s.logger.Error("Failed to upload object",
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, publicURL string) error {
	key, err := s.keyFromURL(publicURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("Failed to delete object",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// keyFromURL extracts the object key from a URL this storage issued.
func (s *S3Storage) keyFromURL(publicURL string) (string, error) {
	if !strings.HasPrefix(publicURL, s.publicBaseURL+"/") {
		return "", fmt.Errorf("url %q was not issued by this storage", publicURL)
	}

	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("invalid object url: %w", err)
	}

	return strings.TrimPrefix(u.Path, "/"), nil
}
