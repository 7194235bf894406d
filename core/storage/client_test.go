package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"locale-manager/core/storage"
	"locale-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"LocalMinio", storage.Config{Endpoint: "localhost:9000", AccessKey: "minioadmin", SecretKey: "minioadmin", Bucket: "locales"}},
		{"SchemeIsStripped", storage.Config{Endpoint: "http://localhost:9000", Bucket: "locales", TimeoutSeconds: 5}},
		{"TLSRegion", storage.Config{Endpoint: "https://s3.eu-west-1.amazonaws.com", UseSSL: true, Region: "eu-west-1", Bucket: "qplay-i18n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "locales/en.json", storage.ObjectName("locales", "en", ".json"))
	assert.Equal(t, "locales/en.json", storage.ObjectName("/locales/", "en", ".json"))
	assert.Equal(t, "i18n/pt-BR.yaml", storage.ObjectName("i18n", "pt-BR", ".yaml"))
	assert.Equal(t, "es.json", storage.ObjectName("", "es", ".json"))

	assert.Equal(t, "locales/", storage.FolderPath("/locales/"))
	assert.Equal(t, "", storage.FolderPath("/"))
}

func TestReadObject(t *testing.T) {
	t.Run("LocaleFile", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "locales", "locales/en.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"greet":"Hello"}`)), nil)

		data, err := storage.ReadObject(context.Background(), mockClient, "locales", storage.ObjectName("locales", "en", ".json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"greet":"Hello"}`, string(data))
		mockClient.AssertExpectations(t)
	})

	t.Run("ClientErrorIsNotWrapped", func(t *testing.T) {
		notFound := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "locales", "locales/gl.json", mock.Anything).Return(nil, notFound)

		_, err := storage.ReadObject(context.Background(), mockClient, "locales", "locales/gl.json")
		require.Error(t, err)
		assert.Equal(t, "NoSuchKey", minio.ToErrorResponse(err).Code)
	})
}

func TestWriteObject(t *testing.T) {
	t.Run("UploadsWithContentType", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "locales", "locales/de.json", mock.Anything, int64(2), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/json"
		})).Return(minio.UploadInfo{}, nil)

		err := storage.WriteObject(context.Background(), mockClient, "locales", "locales/de.json", []byte("{}"), "application/json")
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("NamesTheObjectOnFailure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "locales", "locales/de.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		err := storage.WriteObject(context.Background(), mockClient, "locales", "locales/de.json", []byte("{}"), "application/json")
		assert.ErrorContains(t, err, "upload locales/de.json: access denied")
	})
}

func TestObjectExists(t *testing.T) {
	mockClient := new(mocks.Client)
	byPrefix := func(prefix string) interface{} {
		return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool { return opts.Prefix == prefix })
	}
	mockClient.On("ListObjects", mock.Anything, "locales", byPrefix("locales/en.json")).Return(listing("locales/en.json"))
	mockClient.On("ListObjects", mock.Anything, "locales", byPrefix("locales/de.json")).Return(listing("locales/de.json.bak"))
	mockClient.On("ListObjects", mock.Anything, "locales", byPrefix("locales/gl.json")).Return(listing())

	ctx := context.Background()
	found, err := storage.ObjectExists(ctx, mockClient, "locales", "locales/en.json")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = storage.ObjectExists(ctx, mockClient, "locales", "locales/de.json")
	require.NoError(t, err)
	assert.False(t, found, "a longer key sharing the prefix is another file")

	found, err = storage.ObjectExists(ctx, mockClient, "locales", "locales/gl.json")
	require.NoError(t, err)
	assert.False(t, found)
}
