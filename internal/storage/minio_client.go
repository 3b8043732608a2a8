package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photofolio/internal/config"
)

// Storage is the object-store gateway. Binaries never transit the
// application server: clients write directly with a presigned URL and
// the server only deletes by key.
type Storage interface {
	PresignedPutURL(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage client: %w", err)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// PresignedPutURL issues a time-limited signed write URL for the given
// key. The object store enforces the expiry; an unused credential simply
// lapses.
func (m *MinIOClient) PresignedPutURL(ctx context.Context, key string) (string, error) {
	expiry := m.cfg.MinIO.PresignExpiry
	if expiry <= 0 {
		expiry = time.Hour
	}

	url, err := m.client.PresignedPutObject(ctx, m.cfg.MinIO.BucketName, key, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

func (m *MinIOClient) Remove(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (m *MinIOClient) PublicURL(key string) string {
	return strings.TrimSuffix(m.cfg.MinIO.PublicBaseURL, "/") + "/" + key
}
