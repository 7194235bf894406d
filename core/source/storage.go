package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"locale-manager/core/locale"
	"locale-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageProvider reads locale files from an object storage bucket.
type StorageProvider struct {
	client storage.Client
	bucket string
	prefix string
	format locale.Format
}

// NewStorageProvider creates a provider reading "<prefix>/<id><ext>" objects from bucket.
func NewStorageProvider(client storage.Client, bucket, prefix string, format locale.Format) *StorageProvider {
	return &StorageProvider{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		format: format,
	}
}

// ObjectName returns the object key of a locale identifier.
func (p *StorageProvider) ObjectName(identifier string) string {
	return storage.ObjectName(p.prefix, identifier, p.format.Extension())
}

// FetchKeyMapping downloads and decodes the locale object.
func (p *StorageProvider) FetchKeyMapping(ctx context.Context, identifier string) (*locale.Mapping, error) {
	objectName := p.ObjectName(identifier)

	data, err := storage.ReadObject(ctx, p.client, p.bucket, objectName)
	if err != nil {
		return nil, wrapStorageError(objectName, err)
	}

	m, err := locale.Decode(data, p.format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", objectName, err)
	}
	return m, nil
}

// ListLanguages lists the locale objects under the prefix.
func (p *StorageProvider) ListLanguages(ctx context.Context) ([]string, error) {
	prefix := storage.FolderPath(p.prefix)

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	var ids []string
	for obj := range p.client.ListObjects(ctx, p.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if id, ok := identifierFromName(strings.TrimPrefix(obj.Key, prefix), p.format.Extension()); ok && !strings.Contains(id, "/") {
			ids = append(ids, id)
		}
	}
	return sortedUnique(ids), nil
}

func wrapStorageError(objectName string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", objectName, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", objectName, err)
}
