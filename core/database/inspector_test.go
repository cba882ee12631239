package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Create a test table
	// SQLite specific types: INTEGER, TEXT.
	err = db.Exec("CREATE TABLE registrations (id INTEGER PRIMARY KEY, email TEXT, course TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "registrations")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	// Map columns for easy assertion
	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["email"])
	assert.Equal(t, "text", colMap["course"])

	// Non-existent table: PRAGMA table_info returns an empty result in SQLite,
	// so no error but no columns either.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
