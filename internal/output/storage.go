package output

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/supplylens/supplylens/internal/config"
)

// ObjectStorage captures the minimal operation the publishing step needs.
type ObjectStorage interface {
	UploadFile(ctx context.Context, key, localPath string) error
}

// MinioClient implements ObjectStorage for any S3-compatible endpoint.
type MinioClient struct {
	client *minio.Client
	bucket string
}

// NewMinioClient connects to the configured endpoint and ensures the bucket
// exists.
func NewMinioClient(ctx context.Context, cfg config.StorageConfig) (*MinioClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("storage endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage credentials must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioClient{client: client, bucket: cfg.Bucket}, nil
}

// UploadFile publishes one local file under the given object key.
func (c *MinioClient) UploadFile(ctx context.Context, key, localPath string) error {
	info, err := c.client.FPutObject(ctx, c.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	log.Info().
		Str("bucket", c.bucket).
		Str("key", key).
		Int64("size", info.Size).
		Msg("output published")
	return nil
}

var _ ObjectStorage = (*MinioClient)(nil)

// Publish uploads the given files under their base names. A nil storage is
// a no-op, used when publishing is disabled.
func Publish(ctx context.Context, store ObjectStorage, paths ...string) error {
	if store == nil {
		return nil
	}
	for _, path := range paths {
		if err := store.UploadFile(ctx, filepath.Base(path), path); err != nil {
			return err
		}
	}
	return nil
}
