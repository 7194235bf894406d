package integrity

import (
	"context"
	"errors"

	"locale-manager/core/locale"
	"locale-manager/core/prefs"
	"locale-manager/core/source"
	"locale-manager/core/storage"
	"locale-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoStorage is returned by storage checks when locales are not read from a bucket.
var ErrNoStorage = errors.New("storage checks require the storage locale source")

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	locales  locale.Config
	provider source.Provider
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil; the
// checks depending on them then report an error.
func NewService(client storage.Client, bucket string, locales locale.Config, provider source.Provider, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		locales:  locales,
		provider: provider,
		db:       db,
		logger:   logger,
	}
}

func (s *Service) usesStorage() bool {
	return s.client != nil && s.locales.Source == locale.SourceStorage
}

func (s *Service) format() locale.Format {
	f, err := s.locales.FileFormat()
	if err != nil {
		return locale.FormatJSON
	}
	return f
}

// CheckStructure reports whether the locale folder exists.
func (s *Service) CheckStructure(ctx context.Context) (bool, error) {
	if !s.usesStorage() {
		return false, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.locales.Prefix)
}

// FixStructure creates the locale folder.
func (s *Service) FixStructure(ctx context.Context) error {
	if !s.usesStorage() {
		return ErrNoStorage
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.locales.Prefix, s.logger)
}

// CheckLocaleFiles returns the configured languages without a locale file.
func (s *Service) CheckLocaleFiles(ctx context.Context) ([]string, error) {
	if !s.usesStorage() {
		return nil, ErrNoStorage
	}
	return checks.CheckLocaleFiles(ctx, s.client, s.bucket, s.locales.Prefix, s.format(), s.locales.LanguageList())
}

// FixLocaleFiles creates empty locale files for the missing languages.
func (s *Service) FixLocaleFiles(ctx context.Context, missing []string) ([]string, error) {
	if !s.usesStorage() {
		return nil, ErrNoStorage
	}
	return checks.FixLocaleFiles(ctx, s.client, s.bucket, s.locales.Prefix, s.format(), s.locales.Base, missing, s.logger)
}

// CheckCoverage reconciles every configured language against the base.
func (s *Service) CheckCoverage(ctx context.Context) (*checks.CoverageReport, error) {
	var langs []string
	for _, lang := range s.locales.LanguageList() {
		if lang != s.locales.Base {
			langs = append(langs, lang)
		}
	}
	return checks.CheckCoverage(ctx, s.provider, s.locales.Base, langs)
}

// CheckDatabase verifies the preferences table.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(s.db, &prefs.Preference{})
}

// RunAll runs every check and collects the results by name.
// Failures are reported in place so that one failing check does not hide the others.
func (s *Service) RunAll(ctx context.Context) map[string]interface{} {
	report := make(map[string]interface{})

	if ok, err := s.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "exists": ok}
	}

	if missing, err := s.CheckLocaleFiles(ctx); err != nil {
		report["files"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["files"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if cov, err := s.CheckCoverage(ctx); err != nil {
		report["coverage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["coverage"] = cov
	}

	if db, err := s.CheckDatabase(); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = db
	}

	return report
}
