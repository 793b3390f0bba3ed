package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE staging_entries (`key` TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at DATETIME)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "staging_entries")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "text", colMap["key"].Type)
	assert.Equal(t, "PRI", colMap["key"].Key)
	assert.Equal(t, "NO", colMap["value"].Null)
	assert.Equal(t, "datetime", colMap["updated_at"].Type)

	// PRAGMA table_info returns no rows for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
