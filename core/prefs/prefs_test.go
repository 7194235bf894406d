package prefs

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"locale-manager/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := NewStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewStore(db), mock
}

func TestStore_SQLite(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	lang, err := s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", lang)

	require.NoError(t, s.SetLanguage(ctx, "en"))
	require.NoError(t, s.SetLanguage(ctx, "gl"))

	lang, err = s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gl", lang)

	columns, err := database.GetTableColumns(s.db, Preference{}.TableName())
	require.NoError(t, err)
	assert.Empty(t, database.MissingColumns(columns, Columns...))
}

func TestStore_MySQL(t *testing.T) {
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `preferences` WHERE name = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"name", "value", "updated_at"}).AddRow(LanguageKey, "de", time.Now()))

		lang, err := s.Language(ctx)
		require.NoError(t, err)
		assert.Equal(t, "de", lang)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get Not Found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `preferences` WHERE name = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"name", "value", "updated_at"}))

		_, err := s.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get Error", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `preferences`")).
			WillReturnError(errors.New("connection lost"))

		_, err := s.Language(ctx)
		assert.ErrorContains(t, err, "connection lost")
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("Set Upserts", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `preferences` (`name`,`value`,`updated_at`) VALUES (?,?,?) ON DUPLICATE KEY UPDATE")).
			WithArgs(LanguageKey, "ca", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, s.SetLanguage(ctx, "ca"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
