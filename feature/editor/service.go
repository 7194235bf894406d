package editor

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"locale-manager/core/locale"
	"locale-manager/core/prefs"
	"locale-manager/core/reconcile"
	"locale-manager/core/source"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Service drives one reconciliation session for the HTTP API and the CLI.
type Service struct {
	session     *reconcile.Session
	cfg         locale.Config
	lister      source.Lister
	prefs       *prefs.Store
	exporters   map[string]Exporter
	loadTimeout time.Duration
	logger      *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPreferences persists the loaded language in store.
func WithPreferences(store *prefs.Store) Option {
	return func(s *Service) {
		s.prefs = store
	}
}

// WithLister enables availability reporting in Languages.
func WithLister(l source.Lister) Option {
	return func(s *Service) {
		s.lister = l
	}
}

// WithExporters registers export targets by name.
func WithExporters(exporters ...Exporter) Option {
	return func(s *Service) {
		for _, e := range exporters {
			s.exporters[e.Name()] = e
		}
	}
}

// WithLoadTimeout bounds loads started through the API.
func WithLoadTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.loadTimeout = d
	}
}

// NewService creates a new editor service.
func NewService(session *reconcile.Session, cfg locale.Config, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		session:     session,
		cfg:         cfg,
		exporters:   map[string]Exporter{},
		loadTimeout: 30 * time.Second,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session returns the underlying session.
func (s *Service) Session() *reconcile.Session {
	return s.session
}

// Config returns the locale configuration.
func (s *Service) Config() locale.Config {
	return s.cfg
}

// LanguageInfo describes one configured language.
type LanguageInfo struct {
	Code string `json:"code"`
	// Base is true for the reference language.
	Base bool `json:"base"`
	// Available is false when the source has no file for the language yet.
	Available bool `json:"available"`
	// Active is true for the language being edited.
	Active bool `json:"active"`
}

// Languages lists the configured languages. Availability is reported as true
// when the source cannot list its locales.
func (s *Service) Languages(ctx context.Context) ([]LanguageInfo, error) {
	var available []string
	if s.lister != nil {
		ids, err := s.lister.ListLanguages(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list locales: %w", err)
		}
		available = ids
	}

	current := s.session.Language()
	langs := s.cfg.LanguageList()
	out := make([]LanguageInfo, 0, len(langs))
	for _, code := range langs {
		out = append(out, LanguageInfo{
			Code:      code,
			Base:      code == s.cfg.Base,
			Available: s.lister == nil || slices.Contains(available, code),
			Active:    code == current,
		})
	}
	return out, nil
}

// IsConfigured reports whether lang is one of the editable languages.
func (s *Service) IsConfigured(lang string) bool {
	return slices.Contains(s.cfg.LanguageList(), lang)
}

// InitialLanguage picks the language to open: the saved preference, then the best
// match of preferred among the configured languages, then the default language.
// preferred entries may be Accept-Language headers or POSIX locales such as "en_US.UTF-8".
func (s *Service) InitialLanguage(ctx context.Context, preferred ...string) string {
	if s.prefs != nil {
		saved, err := s.prefs.Language(ctx)
		if err != nil {
			s.logger.Warn("Failed to read saved language", zap.Error(err))
		} else if saved != "" && s.IsConfigured(saved) {
			return saved
		}
	}

	if lang, ok := MatchLanguage(s.cfg.LanguageList(), preferred...); ok {
		return lang
	}
	return s.cfg.DefaultLanguage()
}

// MatchLanguage returns the configured language closest to the preferred ones.
func MatchLanguage(configured []string, preferred ...string) (string, bool) {
	var want []language.Tag
	for _, p := range preferred {
		want = append(want, parsePreferred(p)...)
	}
	if len(want) == 0 || len(configured) == 0 {
		return "", false
	}

	supported := make([]language.Tag, 0, len(configured))
	codes := make([]string, 0, len(configured))
	for _, code := range configured {
		tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		codes = append(codes, code)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, idx, conf := language.NewMatcher(supported).Match(want...)
	if conf == language.No {
		return "", false
	}
	return codes[idx], true
}

func parsePreferred(p string) []language.Tag {
	p = strings.TrimSpace(p)
	if p == "" || p == "C" || p == "POSIX" {
		return nil
	}
	// POSIX locale: ll_CC.encoding@modifier
	if i := strings.IndexAny(p, ".@"); i >= 0 && !strings.ContainsAny(p, ",;") {
		p = p[:i]
	}
	tags, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(p, "_", "-"))
	if err != nil {
		return nil
	}
	return tags
}

// Start loads the initial language.
func (s *Service) Start(ctx context.Context, preferred ...string) error {
	return s.Load(ctx, s.InitialLanguage(ctx, preferred...))
}

// Load switches the session to lang and saves it as the preferred language.
func (s *Service) Load(ctx context.Context, lang string) error {
	if !s.IsConfigured(lang) {
		return fmt.Errorf("%w: %q is not a configured language", reconcile.ErrInvalidLanguage, lang)
	}

	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	s.logger.Info("Loading locale", zap.String("language", lang), zap.String("base", s.cfg.Base))
	if err := s.session.Load(ctx, lang); err != nil {
		return err
	}

	stats := s.session.Stats()
	s.logger.Info("Locale loaded",
		zap.String("language", lang),
		zap.Int("keys", stats.Total),
		zap.Int("missing", stats.Missing),
		zap.Int("changed", stats.Changed),
		zap.Int("extras", stats.Extras),
	)

	if s.prefs != nil {
		if err := s.prefs.SetLanguage(ctx, lang); err != nil {
			s.logger.Warn("Failed to save language preference", zap.Error(err))
		}
	}
	return nil
}

// NextLanguage returns the configured language following the current one, wrapping around.
func (s *Service) NextLanguage() string {
	langs := s.cfg.LanguageList()
	if len(langs) == 0 {
		return ""
	}
	current := s.session.Language()
	for i, lang := range langs {
		if lang == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

// Export delivers the current output through the named exporter.
func (s *Service) Export(ctx context.Context, target string) (string, error) {
	exporter, ok := s.exporters[target]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}

	lang, out, err := s.session.Export()
	if err != nil {
		return "", err
	}

	location, err := exporter.Export(ctx, lang, out)
	if err != nil {
		return "", &ExportError{Target: target, Err: err}
	}

	s.logger.Info("Locale exported",
		zap.String("language", lang),
		zap.String("target", target),
		zap.String("location", location),
	)
	return location, nil
}

// Document returns the exported file name and its JSON content for download.
func (s *Service) Document() (string, []byte, error) {
	lang, out, err := s.session.Export()
	if err != nil {
		return "", nil, err
	}
	data, err := locale.EncodeJSON(out)
	if err != nil {
		return "", nil, &ExportError{Target: "download", Err: err}
	}
	return s.cfg.ExportName(lang), data, nil
}

// Targets returns the registered export targets, sorted.
func (s *Service) Targets() []string {
	names := make([]string, 0, len(s.exporters))
	for name := range s.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Report summarises the reconciliation of the loaded language.
type Report struct {
	Language string          `json:"language"`
	Base     string          `json:"base"`
	Stats    reconcile.Stats `json:"stats"`
	// Missing lists keys with a blank target value.
	Missing []string `json:"missing"`
	// Same lists keys whose target value equals the base value.
	Same []string `json:"same"`
	// Extras lists keys only present in the target.
	Extras []string `json:"extras"`
}

// Report builds the reconciliation report of the loaded language.
func (s *Service) Report() (*Report, error) {
	if s.session.Language() == "" {
		return nil, reconcile.ErrNotReady
	}

	r := &Report{
		Language: s.session.Language(),
		Base:     s.cfg.Base,
		Stats:    s.session.Stats(),
		Missing:  []string{},
		Same:     []string{},
		Extras:   s.session.ExtraKeys(),
	}
	for _, row := range s.session.Rows() {
		switch {
		case row.Missing:
			r.Missing = append(r.Missing, row.Key)
		case !row.Changed:
			r.Same = append(r.Same, row.Key)
		}
	}
	return r, nil
}
