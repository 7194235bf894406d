package editor

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"locale-manager/core/locale"
	"locale-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := &FileExporter{Dir: dir, Prefix: "qplay_"}

	m := locale.FromPairs("greet", "Hello", "extra1", "X", "bye", "Au revoir")
	location, err := e.Export(context.Background(), "en", m)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "qplay_en.json"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"greet\": \"Hello\",\n  \"extra1\": \"X\",\n  \"bye\": \"Au revoir\"\n}\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestClipboardExporter(t *testing.T) {
	var copied string
	e := &ClipboardExporter{write: func(s string) error {
		copied = s
		return nil
	}}

	location, err := e.Export(context.Background(), "en", locale.FromPairs("a", "1"))
	require.NoError(t, err)
	assert.Equal(t, TargetClipboard, location)
	assert.Equal(t, "{\n  \"a\": \"1\"\n}\n", copied)

	e = &ClipboardExporter{write: func(string) error { return errors.New("no display") }}
	_, err = e.Export(context.Background(), "en", locale.FromPairs("a", "1"))
	assert.ErrorContains(t, err, "no display")
}

func TestStorageExporter(t *testing.T) {
	mockClient := new(mocks.Client)
	e := NewStorageExporter(mockClient, "locales", "/i18n/", locale.FormatJSON)

	var uploaded []byte
	mockClient.On("PutObject", mock.Anything, "locales", "i18n/en.json", mock.Anything, int64(15), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
	}).Return(minio.UploadInfo{}, nil)

	location, err := e.Export(context.Background(), "en", locale.FromPairs("a", "1"))
	require.NoError(t, err)
	assert.Equal(t, "locales/i18n/en.json", location)
	assert.Equal(t, "{\n  \"a\": \"1\"\n}\n", string(uploaded))
	mockClient.AssertExpectations(t)
}

func TestStorageExporter_Error(t *testing.T) {
	mockClient := new(mocks.Client)
	e := NewStorageExporter(mockClient, "locales", "", locale.FormatYAML)

	mockClient.On("PutObject", mock.Anything, "locales", "en.yaml", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := e.Export(context.Background(), "en", locale.FromPairs("a", "1"))
	assert.ErrorContains(t, err, "access denied")
}

func TestExportError(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&ExportError{Target: TargetFile, Err: cause})

	assert.ErrorIs(t, err, ErrExport)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "export to file: disk full", err.Error())
}
