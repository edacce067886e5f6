package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioUploader stores images in a MinIO (S3-compatible) bucket.
type MinioUploader struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioUploader constructs an uploader from config.
func NewMinioUploader(cfg *config.Config) (*MinioUploader, error) {
	if strings.TrimSpace(cfg.MediaEndpoint) == "" {
		return nil, errors.New("media endpoint is required")
	}
	if strings.TrimSpace(cfg.MediaBucket) == "" {
		return nil, errors.New("media bucket is required")
	}

	client, err := minio.New(cfg.MediaEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		Secure: cfg.MediaUseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &MinioUploader{
		client:  client,
		bucket:  cfg.MediaBucket,
		baseURL: publicBaseURL(cfg),
	}, nil
}

// publicBaseURL derives the URL prefix for stored objects. An explicit
// MEDIA_BASE_URL wins; otherwise the endpoint itself is assumed reachable.
func publicBaseURL(cfg *config.Config) string {
	if cfg.MediaBaseURL != "" {
		return strings.TrimSuffix(cfg.MediaBaseURL, "/")
	}
	scheme := "http"
	if cfg.MediaUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.MediaEndpoint, cfg.MediaBucket)
}

// EnsureBucket ensures the configured bucket exists.
func (u *MinioUploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{})
}

// Upload relocates the image bytes and returns the durable public URL.
func (u *MinioUploader) Upload(ctx context.Context, in UploadInput) (string, error) {
	key := objectKey(in.Folder, in.Filename)

	_, err := u.client.PutObject(ctx, u.bucket, key,
		bytes.NewReader(in.Content), int64(len(in.Content)),
		minio.PutObjectOptions{ContentType: in.ContentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return u.baseURL + "/" + key, nil
}
