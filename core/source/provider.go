package source

import (
	"context"
	"errors"
	"sort"
	"strings"

	"locale-manager/core/locale"
)

// ErrNotFound is returned when the requested locale does not exist.
var ErrNotFound = errors.New("locale not found")

// Provider fetches the key→string mapping of a locale.
type Provider interface {
	// FetchKeyMapping returns the mapping stored under identifier.
	// It returns an error wrapping ErrNotFound if the locale does not exist.
	FetchKeyMapping(ctx context.Context, identifier string) (*locale.Mapping, error)
}

// Lister is implemented by providers that can enumerate the available locales.
type Lister interface {
	// ListLanguages returns the identifiers of the available locales, sorted.
	ListLanguages(ctx context.Context) ([]string, error)
}

// identifierFromName strips the extension of a locale file name.
// ok is false when the name does not carry the expected extension.
func identifierFromName(name, extension string) (string, bool) {
	if !strings.HasSuffix(name, extension) {
		return "", false
	}
	id := strings.TrimSuffix(name, extension)
	if id == "" || strings.HasPrefix(id, ".") {
		return "", false
	}
	return id, true
}

func sortedUnique(ids []string) []string {
	sort.Strings(ids)
	out := ids[:0]
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		out = append(out, id)
	}
	return out
}
