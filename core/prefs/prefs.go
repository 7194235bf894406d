package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LanguageKey stores the last language loaded by the editor.
const LanguageKey = "qplay_language"

// ErrNotFound is returned by Get when the preference does not exist.
var ErrNotFound = errors.New("preference not found")

// Preference is one stored key/value pair.
type Preference struct {
	Name      string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName implements gorm's tabler.
func (Preference) TableName() string {
	return "preferences"
}

// Columns lists the columns the store relies on.
var Columns = []string{"name", "value", "updated_at"}

// Store persists editor preferences.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db. Call Migrate once before use.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the preferences table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Preference{}); err != nil {
		return fmt.Errorf("prefs migrate: %w", err)
	}
	return nil
}

// Get returns the value of name.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var p Preference
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("prefs get %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("prefs get %q: %w", name, err)
	}
	return p.Value, nil
}

// Set stores value under name, replacing any previous value.
func (s *Store) Set(ctx context.Context, name, value string) error {
	p := Preference{Name: name, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&p).Error
	if err != nil {
		return fmt.Errorf("prefs set %q: %w", name, err)
	}
	return nil
}

// Language returns the saved editor language, or "" when none was saved.
func (s *Store) Language(ctx context.Context) (string, error) {
	lang, err := s.Get(ctx, LanguageKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return lang, err
}

// SetLanguage saves the editor language.
func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	return s.Set(ctx, LanguageKey, lang)
}
