package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE preferences (name TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at DATETIME)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "preferences")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, ColumnInfo{Field: "name", Type: "text", Null: "YES", Key: "PRI"}, columns[0])
	assert.Equal(t, "NO", columns[1].Null)
	assert.Equal(t, "datetime", columns[2].Type)

	assert.Empty(t, MissingColumns(columns, "name", "value"))
	assert.Equal(t, []string{"created_at"}, MissingColumns(columns, "name", "created_at"))

	// PRAGMA table_info returns no rows for unknown tables
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)

	_, err = GetTableColumns(db, "x'; DROP TABLE preferences; --")
	assert.Error(t, err)
}
