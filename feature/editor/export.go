package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"locale-manager/core/locale"
	"locale-manager/core/storage"

	"github.com/atotto/clipboard"
)

const (
	TargetFile      = "file"
	TargetClipboard = "clipboard"
	TargetStorage   = "storage"
)

var (
	// ErrExport marks every failure to deliver an exported locale.
	ErrExport = errors.New("export failed")

	// ErrUnknownTarget is returned for export targets that are not configured.
	ErrUnknownTarget = errors.New("unknown export target")
)

// ExportError describes a failed delivery. The session is not affected.
type ExportError struct {
	// Target is the exporter name (file, clipboard, storage).
	Target string
	// Err is the underlying error.
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Target, e.Err)
}

// Unwrap exposes both ErrExport and the cause.
func (e *ExportError) Unwrap() []error {
	return []error{ErrExport, e.Err}
}

// Exporter delivers an exported locale somewhere.
type Exporter interface {
	// Name identifies the exporter as an export target.
	Name() string
	// Export delivers m for lang and returns where it went.
	Export(ctx context.Context, lang string, m *locale.Mapping) (string, error)
}

// FileExporter writes "<dir>/<prefix><lang>.json".
type FileExporter struct {
	Dir    string
	Prefix string
}

// NewFileExporter creates a file exporter using the configured export naming.
func NewFileExporter(cfg locale.Config) *FileExporter {
	return &FileExporter{Dir: cfg.ExportDir, Prefix: cfg.ExportPrefix}
}

func (e *FileExporter) Name() string { return TargetFile }

// Export writes the file through a temporary file so readers never see partial output.
func (e *FileExporter) Export(_ context.Context, lang string, m *locale.Mapping) (string, error) {
	data, err := locale.EncodeJSON(m)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	target := filepath.Join(e.Dir, e.Prefix+lang+locale.FormatJSON.Extension())
	tmp, err := os.CreateTemp(e.Dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}

// ClipboardExporter copies the JSON document to the system clipboard.
type ClipboardExporter struct {
	write func(string) error
}

// NewClipboardExporter creates an exporter backed by the system clipboard.
func NewClipboardExporter() *ClipboardExporter {
	return &ClipboardExporter{write: writeSystemClipboard}
}

func writeSystemClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not available on this system")
	}
	return clipboard.WriteAll(text)
}

func (e *ClipboardExporter) Name() string { return TargetClipboard }

func (e *ClipboardExporter) Export(_ context.Context, _ string, m *locale.Mapping) (string, error) {
	data, err := locale.EncodeJSON(m)
	if err != nil {
		return "", err
	}
	if err := e.write(string(data)); err != nil {
		return "", err
	}
	return TargetClipboard, nil
}

// StorageExporter uploads the locale back to the bucket it is read from,
// encoded in the configured locale format.
type StorageExporter struct {
	client storage.Client
	bucket string
	prefix string
	format locale.Format
}

// NewStorageExporter creates an exporter writing "<prefix>/<lang><ext>" objects.
func NewStorageExporter(client storage.Client, bucket, prefix string, format locale.Format) *StorageExporter {
	return &StorageExporter{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		format: format,
	}
}

func (e *StorageExporter) Name() string { return TargetStorage }

func (e *StorageExporter) Export(ctx context.Context, lang string, m *locale.Mapping) (string, error) {
	data, err := locale.Encode(m, e.format)
	if err != nil {
		return "", err
	}

	objectName := storage.ObjectName(e.prefix, lang, e.format.Extension())
	if err := storage.WriteObject(ctx, e.client, e.bucket, objectName, data, e.format.ContentType()); err != nil {
		return "", err
	}
	return e.bucket + "/" + objectName, nil
}
