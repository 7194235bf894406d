package checks

import (
	"bytes"
	"context"
	"fmt"

	"locale-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func requireBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}

// CheckStructure reports whether the locale folder exists in the bucket.
// The bucket root always exists.
func CheckStructure(ctx context.Context, client storage.Client, bucket, prefix string) (bool, error) {
	if err := requireBucket(ctx, client, bucket); err != nil {
		return false, err
	}

	folder := storage.FolderPath(prefix)
	if folder == "" {
		return true, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    folder,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
		}
		return true, nil
	}
	return false, nil
}

// FixStructure creates the locale folder marker object.
func FixStructure(ctx context.Context, client storage.Client, bucket, prefix string, logger *zap.Logger) error {
	folder := storage.FolderPath(prefix)
	if folder == "" {
		return nil
	}

	_, err := client.PutObject(ctx, bucket, folder, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
	if err != nil {
		logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
		return err
	}
	logger.Info("Created missing folder", zap.String("folder", folder))
	return nil
}
