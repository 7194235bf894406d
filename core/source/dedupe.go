package source

import (
	"context"

	"locale-manager/core/locale"

	"golang.org/x/sync/singleflight"
)

// Deduplicated coalesces concurrent fetches of the same identifier into one provider call.
type Deduplicated struct {
	next Provider
	sf   singleflight.Group
}

// Dedupe wraps next with request coalescing.
func Dedupe(next Provider) *Deduplicated {
	return &Deduplicated{next: next}
}

// FetchKeyMapping returns an independent copy of the shared result.
//
// The shared fetch ignores caller cancellation; each caller stops waiting when
// its own context is done.
func (d *Deduplicated) FetchKeyMapping(ctx context.Context, identifier string) (*locale.Mapping, error) {
	shared := context.WithoutCancel(ctx)
	ch := d.sf.DoChan(identifier, func() (interface{}, error) {
		return d.next.FetchKeyMapping(shared, identifier)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*locale.Mapping).Clone(), nil
	}
}

// ListLanguages delegates to the wrapped provider when it can list.
func (d *Deduplicated) ListLanguages(ctx context.Context) ([]string, error) {
	if lister, ok := d.next.(Lister); ok {
		return lister.ListLanguages(ctx)
	}
	return nil, nil
}
