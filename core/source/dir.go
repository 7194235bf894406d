package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"locale-manager/core/locale"
)

// DirProvider reads locale files from a directory.
type DirProvider struct {
	fsys   fs.FS
	format locale.Format
}

// NewDirProvider creates a provider reading "<dir>/<id><ext>" files.
func NewDirProvider(dir string, format locale.Format) *DirProvider {
	return NewFSProvider(os.DirFS(dir), format)
}

// NewFSProvider creates a provider over an arbitrary file system.
func NewFSProvider(fsys fs.FS, format locale.Format) *DirProvider {
	return &DirProvider{fsys: fsys, format: format}
}

// FetchKeyMapping reads and decodes the locale file.
func (p *DirProvider) FetchKeyMapping(_ context.Context, identifier string) (*locale.Mapping, error) {
	name := identifier + p.format.Extension()
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid locale identifier %q", identifier)
	}

	data, err := fs.ReadFile(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	m, err := locale.Decode(data, p.format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return m, nil
}

// ListLanguages lists the locale files of the directory.
func (p *DirProvider) ListLanguages(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := identifierFromName(entry.Name(), p.format.Extension()); ok {
			ids = append(ids, id)
		}
	}
	return sortedUnique(ids), nil
}
