package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"locale-manager/core/locale"
	"locale-manager/core/source"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const (
	loadingMessage = "Loading translations..."
	emptyMessage   = "No language loaded"
)

// Observer is notified of session events. Calls happen after the session lock is released.
type Observer interface {
	// LoadFinished is called once per load that was not superseded.
	LoadFinished(language string, stats Stats, elapsed time.Duration, err error)
	// RowEdited is called after every successful edit.
	RowEdited(language, key string, stats Stats)
	// Exported is called after every export with the number of keys in the output.
	Exported(language string, keys int)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithObserver registers an observer for load, edit and export events.
func WithObserver(o Observer) SessionOption {
	return func(s *Session) {
		s.observer = o
	}
}

// Session is the editing state of one target language against the base language.
//
// It is safe for concurrent use. The lock is not held while fetching, so edits
// against the current snapshot are accepted while a load is outstanding; the
// most recently started load replaces the snapshot when it completes.
type Session struct {
	provider     source.Provider
	baseLanguage string
	observer     Observer

	mu          sync.Mutex
	gen         uint64
	loading     bool
	loadingLang string
	lastErr     error
	snap        *snapshot
}

type snapshot struct {
	language  string
	target    *locale.Mapping
	rows      []*Row
	index     map[string]*Row
	extraKeys []string
	filter    Filter
	activeKey string
	stats     Stats
	visible   int
}

// NewSession creates an empty session reading locales from provider.
func NewSession(provider source.Provider, baseLanguage string, opts ...SessionOption) *Session {
	s := &Session{
		provider:     provider,
		baseLanguage: baseLanguage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseLanguage returns the language every target is compared against.
func (s *Session) BaseLanguage() string {
	return s.baseLanguage
}

// ValidateLanguage checks that lang is a well-formed language identifier.
// Both "pt-BR" and "pt_BR" are accepted.
func ValidateLanguage(lang string) error {
	if strings.TrimSpace(lang) == "" || strings.ContainsAny(lang, "/\\ ") {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if _, err := language.Parse(strings.ReplaceAll(lang, "_", "-")); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, lang, err)
	}
	return nil
}

// Load fetches the base and target mappings and replaces the snapshot.
//
// A missing target locale is treated as empty. Any other fetch failure leaves the
// previous snapshot in place and is returned as a *LoadError. If another load was
// started before this one completed, the result is discarded and ErrLoadSuperseded
// is returned.
func (s *Session) Load(ctx context.Context, lang string) error {
	if err := ValidateLanguage(lang); err != nil {
		return err
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.loadingLang = lang
	s.lastErr = nil
	s.mu.Unlock()

	started := time.Now()
	base, target, err := s.fetch(ctx, lang)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return ErrLoadSuperseded
	}
	s.loading = false
	s.loadingLang = ""

	var stats Stats
	if err != nil {
		s.lastErr = err
		if s.snap != nil {
			stats = s.snap.stats
		}
	} else {
		s.snap = newSnapshot(lang, base, target)
		stats = s.snap.stats
	}
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.LoadFinished(lang, stats, time.Since(started), err)
	}
	return err
}

// Refresh reloads the language currently being edited.
func (s *Session) Refresh(ctx context.Context) error {
	lang := s.Language()
	if lang == "" {
		return ErrNotReady
	}
	return s.Load(ctx, lang)
}

func (s *Session) fetch(ctx context.Context, lang string) (*locale.Mapping, *locale.Mapping, error) {
	if lang == s.baseLanguage {
		base, err := s.provider.FetchKeyMapping(ctx, lang)
		if err != nil {
			return nil, nil, &LoadError{Language: lang, Identifier: lang, Err: err}
		}
		return base, base.Clone(), nil
	}

	var base, target *locale.Mapping
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.provider.FetchKeyMapping(gctx, s.baseLanguage)
		if err != nil {
			return &LoadError{Language: lang, Identifier: s.baseLanguage, Err: err}
		}
		base = m
		return nil
	})
	g.Go(func() error {
		m, err := s.provider.FetchKeyMapping(gctx, lang)
		if errors.Is(err, source.ErrNotFound) {
			target = locale.New()
			return nil
		}
		if err != nil {
			return &LoadError{Language: lang, Identifier: lang, Err: err}
		}
		target = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return base, target, nil
}

func newSnapshot(lang string, base, target *locale.Mapping) *snapshot {
	if target == nil {
		target = locale.New()
	}
	rows, extraKeys := Build(base, target)
	snap := &snapshot{
		language:  lang,
		target:    target,
		rows:      rows,
		index:     make(map[string]*Row, len(rows)),
		extraKeys: extraKeys,
	}
	for _, row := range rows {
		snap.index[row.Key] = row
	}
	snap.visible = ComputeVisibility(rows, snap.filter, "")
	snap.stats = ComputeStats(rows, extraKeys)
	return snap
}

// Edit sets the target value of key.
// Visibility is recomputed before the stats so both reflect the new value.
func (s *Session) Edit(key, value string) error {
	s.mu.Lock()
	snap := s.snap
	if snap == nil {
		s.mu.Unlock()
		return ErrNotReady
	}
	row, ok := snap.index[key]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	row.SetTargetValue(value)
	snap.visible = ComputeVisibility(snap.rows, snap.filter, snap.activeKey)
	snap.stats = ComputeStats(snap.rows, snap.extraKeys)
	lang, stats := snap.language, snap.stats
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.RowEdited(lang, key, stats)
	}
	return nil
}

// SetFilter applies the non-nil fields of u and recomputes visibility.
func (s *Session) SetFilter(u FilterUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return ErrNotReady
	}
	s.snap.filter = u.Apply(s.snap.filter)
	s.snap.visible = ComputeVisibility(s.snap.rows, s.snap.filter, s.snap.activeKey)
	return nil
}

// Focus marks key as the row being edited. The active row stays visible while
// its value no longer satisfies the missing-only or same-only toggles.
func (s *Session) Focus(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return ErrNotReady
	}
	if _, ok := s.snap.index[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	s.snap.activeKey = key
	s.snap.visible = ComputeVisibility(s.snap.rows, s.snap.filter, key)
	return nil
}

// Blur clears the active row.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil || s.snap.activeKey == "" {
		return
	}
	s.snap.activeKey = ""
	s.snap.visible = ComputeVisibility(s.snap.rows, s.snap.filter, "")
}

// Export returns the language of the current snapshot and its target mapping
// with the current row values merged in. Both come from the same snapshot.
func (s *Session) Export() (string, *locale.Mapping, error) {
	s.mu.Lock()
	snap := s.snap
	if snap == nil {
		s.mu.Unlock()
		return "", nil, ErrNotReady
	}
	out := BuildOutput(snap.target, snap.rows)
	lang := snap.language
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.Exported(lang, out.Len())
	}
	return lang, out, nil
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case s.loading:
		return StateLoading
	case s.snap != nil:
		return StateReady
	default:
		return StateEmpty
	}
}

// Status returns the state together with the status line for renderers.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{State: s.stateLocked()}
	switch st.State {
	case StateLoading:
		st.Language = s.loadingLang
		st.Message = loadingMessage
	case StateReady:
		st.Language = s.snap.language
		st.Message = "Editing: " + s.snap.language
	default:
		st.Message = emptyMessage
	}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
		st.Message = "Error: " + st.Error
	}
	return st
}

// Language returns the language of the current snapshot, or "" before the first successful load.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return ""
	}
	return s.snap.language
}

// Rows returns a copy of every row in base order.
func (s *Session) Rows() []RowView {
	return s.rowViews(false)
}

// VisibleRows returns a copy of the rows that pass the current filter.
func (s *Session) VisibleRows() []RowView {
	return s.rowViews(true)
}

func (s *Session) rowViews(visibleOnly bool) []RowView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return []RowView{}
	}
	size := len(s.snap.rows)
	if visibleOnly {
		size = s.snap.visible
	}
	views := make([]RowView, 0, size)
	for _, row := range s.snap.rows {
		if visibleOnly && !row.Visible {
			continue
		}
		views = append(views, row.view(s.snap.activeKey))
	}
	return views
}

// Row returns a copy of the row for key.
func (s *Session) Row(key string) (RowView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return RowView{}, ErrNotReady
	}
	row, ok := s.snap.index[key]
	if !ok {
		return RowView{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return row.view(s.snap.activeKey), nil
}

// ExtraKeys returns the keys present only in the target, in target order.
func (s *Session) ExtraKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return []string{}
	}
	out := make([]string, len(s.snap.extraKeys))
	copy(out, s.snap.extraKeys)
	return out
}

// Stats returns the counts computed after the last load or edit.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return Stats{}
	}
	return s.snap.stats
}

// VisibleCount returns the number of rows passing the current filter.
func (s *Session) VisibleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return 0
	}
	return s.snap.visible
}

// Filter returns the current filter.
func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return Filter{}
	}
	return s.snap.filter
}

// ActiveKey returns the key of the row being edited, or "".
func (s *Session) ActiveKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return ""
	}
	return s.snap.activeKey
}
