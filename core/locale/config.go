package locale

import "strings"

const (
	SourceStorage = "storage"
	SourceDir     = "dir"
)

// Config holds the locale catalogue settings.
type Config struct {
	// Base is the reference language every target is compared against.
	Base string `mapstructure:"base" default:"es" validate:"required"`
	// Languages is the comma-separated list of editable languages.
	Languages string `mapstructure:"languages" default:"es,en,de,ca,gl,eu" validate:"required"`
	// Source selects where locale files are read from (storage, dir).
	Source string `mapstructure:"source" default:"storage" validate:"oneof=storage dir"`
	// Dir is the locale directory when Source is dir.
	Dir string `mapstructure:"dir" default:"locales" validate:"required_if=Source dir"`
	// Prefix is the object prefix of the locale files in the bucket.
	Prefix string `mapstructure:"prefix" default:"locales"`
	// Format is the locale file format (json, yaml).
	Format string `mapstructure:"format" default:"json" validate:"oneof=json yaml yml"`
	// ExportDir is where exported files are written.
	ExportDir string `mapstructure:"export_dir" default:"."`
	// ExportPrefix is the file name prefix of exported files.
	ExportPrefix string `mapstructure:"export_prefix" default:"qplay_"`
}

// LanguageList returns the configured languages, trimmed and without duplicates.
// The base language is always part of the list.
func (c Config) LanguageList() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(lang string) {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			return
		}
		if _, ok := seen[lang]; ok {
			return
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}

	for _, lang := range strings.Split(c.Languages, ",") {
		add(lang)
	}
	add(c.Base)
	return out
}

// DefaultLanguage returns the first configured language other than the base,
// or the base when no other language is configured.
func (c Config) DefaultLanguage() string {
	for _, lang := range c.LanguageList() {
		if lang != c.Base {
			return lang
		}
	}
	return c.Base
}

// FileFormat parses Format.
func (c Config) FileFormat() (Format, error) {
	return ParseFormat(c.Format)
}

// ExportName returns the file name of an exported language, e.g. "qplay_en.json".
func (c Config) ExportName(lang string) string {
	return c.ExportPrefix + lang + FormatJSON.Extension()
}
