package checks

import (
	"context"
	"errors"
	"fmt"

	"locale-manager/core/locale"
	"locale-manager/core/reconcile"
	"locale-manager/core/source"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the locale downloads of a coverage check.
const maxConcurrentFetches = 4

// CoverageReport compares every configured language with the base language.
type CoverageReport struct {
	Base      string             `json:"base"`
	BaseKeys  int                `json:"base_keys"`
	Languages []LanguageCoverage `json:"languages"`
}

// LanguageCoverage is the reconciliation summary of one language.
type LanguageCoverage struct {
	Language string          `json:"language"`
	Present  bool            `json:"present"`
	Stats    reconcile.Stats `json:"stats"`
	// Translated is the percentage of base keys with a non-blank value.
	Translated float64 `json:"translated"`
	Error      string  `json:"error,omitempty"`
}

// CheckCoverage fetches the base and every language and reconciles them.
// A failing language is reported in its entry; only a failing base aborts the check.
func CheckCoverage(ctx context.Context, provider source.Provider, base string, languages []string) (*CoverageReport, error) {
	baseMapping, err := provider.FetchKeyMapping(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch base locale %s: %w", base, err)
	}

	report := &CoverageReport{
		Base:      base,
		BaseKeys:  baseMapping.Len(),
		Languages: make([]LanguageCoverage, len(languages)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, lang := range languages {
		g.Go(func() error {
			report.Languages[i] = coverageOf(gctx, provider, baseMapping, lang)
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}

func coverageOf(ctx context.Context, provider source.Provider, base *locale.Mapping, lang string) LanguageCoverage {
	cov := LanguageCoverage{Language: lang, Present: true}

	target, err := provider.FetchKeyMapping(ctx, lang)
	switch {
	case errors.Is(err, source.ErrNotFound):
		cov.Present = false
		target = locale.New()
	case err != nil:
		cov.Error = err.Error()
		return cov
	}

	rows, extras := reconcile.Build(base, target)
	cov.Stats = reconcile.ComputeStats(rows, extras)
	if cov.Stats.Total > 0 {
		cov.Translated = float64(cov.Stats.Total-cov.Stats.Missing) * 100 / float64(cov.Stats.Total)
	}
	return cov
}
