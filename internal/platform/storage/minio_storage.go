package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/platform/config"
)

// minioStorage stores payment attachments in an S3-compatible bucket.
type minioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *slog.Logger
}

// NewMinioStorage creates the object storage adapter from configuration.
func NewMinioStorage(cfg *config.Config, logger *slog.Logger) (services.ObjectStorageSvc, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	publicURL := strings.TrimSuffix(cfg.StoragePublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.StorageUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.StorageEndpoint, cfg.StorageBucket)
	}

	return &minioStorage{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

var _ services.ObjectStorageSvc = (*minioStorage)(nil)

// BuildObjectKey partitions uploads by month and member:
// <folder>/<YYYY-MM>/<memberID>/<YYYYMMDD>-<uuid>.<ext>
func BuildObjectKey(folder, memberID, filename string, now time.Time) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s/%s/%s-%s.%s",
		folder,
		now.Format("2006-01"),
		memberID,
		now.Format("20060102"),
		uuid.NewString(),
		ext,
	)
}

func (s *minioStorage) Upload(ctx context.Context, in services.UploadInput) (*services.StoredObject, error) {
	key := BuildObjectKey(in.Folder, in.MemberID, in.Filename, time.Now().UTC())

	_, err := s.client.PutObject(ctx, s.bucket, key, in.Reader, in.Size, minio.PutObjectOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return &services.StoredObject{
		Key: key,
		URL: s.publicURL + "/" + key,
	}, nil
}

func (s *minioStorage) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}

// KeyFromURL extracts the object key from a public URL previously returned by
// Upload. Returns "" for foreign URLs.
func (s *minioStorage) KeyFromURL(url string) string {
	prefix := s.publicURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}
