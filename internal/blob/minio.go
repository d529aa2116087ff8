// Package blob stores uploaded photos in S3-compatible object storage.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"orgadmin/internal/observability/metrics"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base under which stored objects are reachable,
	// e.g. http://localhost:9000.
	PublicURL string
}

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStore(cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// EnsureBucket verifies the configured bucket exists. Called once at startup.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// Upload stores data and returns a stable URL for the object.
func (s *MinioStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s-%s", uuid.New().String(), sanitize(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentTypeFor(filename)})
	if err != nil {
		metrics.PhotoUploadsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("upload file: %w", err)
	}

	metrics.PhotoUploadsTotal.WithLabelValues("ok").Inc()
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

func contentTypeFor(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

func sanitize(filename string) string {
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	if filename == "" {
		return "photo"
	}
	return filename
}
