package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

// FolderPath returns the "prefix/" folder key, or "" for the bucket root.
func FolderPath(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

// ObjectName returns the key of the locale file of lang: "<prefix>/<lang><ext>".
func ObjectName(prefix, lang, ext string) string {
	return path.Join(strings.Trim(prefix, "/"), lang+ext)
}

// ReadObject downloads the whole object.
// Errors are returned as reported by the client so callers can inspect them with minio.ToErrorResponse.
func ReadObject(ctx context.Context, client Client, bucket, objectName string) ([]byte, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	// minio resolves the object lazily, so a missing key surfaces on the first read.
	return io.ReadAll(reader)
}

// WriteObject uploads data under objectName.
func WriteObject(ctx context.Context, client Client, bucket, objectName string, data []byte, contentType string) error {
	_, err := client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}
	return nil
}

// ObjectExists reports whether an object with exactly this key is listed in the bucket.
func ObjectExists(ctx context.Context, client Client, bucket, objectName string) (bool, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    objectName,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", objectName, obj.Err)
		}
		if obj.Key == objectName {
			return true, nil
		}
	}
	return false, nil
}
