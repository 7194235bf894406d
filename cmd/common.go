package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"locale-manager/core/config"
	"locale-manager/core/database"
	"locale-manager/core/locale"
	"locale-manager/core/metrics"
	"locale-manager/core/prefs"
	"locale-manager/core/reconcile"
	"locale-manager/core/source"
	"locale-manager/core/storage"
	"locale-manager/feature/editor"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// components holds the services shared by the commands.
type components struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    storage.Client
	db       *gorm.DB
	prefs    *prefs.Store
	provider *source.Deduplicated
	metrics  *metrics.Metrics
	session  *reconcile.Session
	editor   *editor.Service
}

// setup wires storage, the locale source, the optional preferences database and the editor service.
func setup(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*components, error) {
	format, err := cfg.Locales.FileFormat()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var next source.Provider
	switch cfg.Locales.Source {
	case locale.SourceDir:
		next = source.NewDirProvider(cfg.Locales.Dir, format)
	default:
		next = source.NewStorageProvider(store, cfg.Storage.Bucket, cfg.Locales.Prefix, format)
	}
	provider := source.Dedupe(next)

	c := &components{
		cfg:      cfg,
		logger:   logg,
		store:    store,
		provider: provider,
		metrics:  metrics.New(),
	}

	// Preferences are optional: without a database the initial language is not remembered.
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		ps := prefs.NewStore(conn)
		if err := ps.Migrate(ctx); err != nil {
			logg.Warn("Failed to migrate preferences", zap.Error(err))
		} else {
			c.db = conn
			c.prefs = ps
		}
	}

	c.session = reconcile.NewSession(provider, cfg.Locales.Base, reconcile.WithObserver(c.metrics))

	opts := []editor.Option{
		editor.WithLister(provider),
		editor.WithLoadTimeout(cfg.Server.LoadTimeout()),
		editor.WithExporters(
			editor.NewFileExporter(cfg.Locales),
			editor.NewClipboardExporter(),
			editor.NewStorageExporter(store, cfg.Storage.Bucket, cfg.Locales.Prefix, format),
		),
	}
	if c.prefs != nil {
		opts = append(opts, editor.WithPreferences(c.prefs))
	}
	c.editor = editor.NewService(c.session, cfg.Locales, logg, opts...)

	return c, nil
}

// systemLanguages returns the user's language settings, most specific first.
func systemLanguages() []string {
	var langs []string
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			langs = append(langs, v)
		}
	}
	// LANGUAGE is a colon-separated priority list
	for _, v := range strings.Split(os.Getenv("LANGUAGE"), ":") {
		if v != "" {
			langs = append(langs, v)
		}
	}
	return langs
}

// resolveLanguage returns lang when set, or the language the editor would open at startup.
func (c *components) resolveLanguage(ctx context.Context, lang string) (string, error) {
	if lang == "" {
		return c.editor.InitialLanguage(ctx, systemLanguages()...), nil
	}
	if !c.editor.IsConfigured(lang) {
		return "", fmt.Errorf("%w: %q is not one of %v", reconcile.ErrInvalidLanguage, lang, c.cfg.Locales.LanguageList())
	}
	return lang, nil
}
