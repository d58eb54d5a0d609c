package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/artkessler/pulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, dbPath, table string) bool {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err, "Failed to open database")
	defer func() { _ = db.Close() }()

	var name string
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
	err = row.Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	require.NoError(t, err, "Failed to query sqlite_master")
	return true
}

func TestMigrateHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate_test.db")

	// Migrate up to the latest version
	err := MigrateHistory(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err, "Migrate up should not fail")

	assert.True(t, tableExists(t, dbPath, reportRunsTable), "Report runs table should exist after up")
	assert.True(t, tableExists(t, dbPath, dayScoresTable), "Day scores table should exist after up")

	// Migrating again is a no-op
	err = MigrateHistory(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err, "Repeated migrate up should not fail")

	// Roll back to a specific version
	err = MigrateHistory(schema.SQLiteBackend, dbPath, 1)
	require.NoError(t, err, "Migrate to version 1 should not fail")
	assert.True(t, tableExists(t, dbPath, reportRunsTable), "Report runs table should survive at version 1")
	assert.False(t, tableExists(t, dbPath, dayScoresTable), "Day scores table should be gone at version 1")

	// Roll back everything
	err = MigrateHistory(schema.SQLiteBackend, dbPath, 0)
	require.NoError(t, err, "Migrate down should not fail")
	assert.False(t, tableExists(t, dbPath, reportRunsTable), "Report runs table should be gone after down")
}

func TestMigrateHistoryNoneBackend(t *testing.T) {
	err := MigrateHistory(schema.NoneBackend, "", -1)
	assert.Error(t, err, "Migrations should not be supported for NoneBackend")
}

func TestMigrateHistoryUnsupportedBackend(t *testing.T) {
	err := MigrateHistory("unsupported", "", -1)
	assert.Error(t, err, "Expected error for unsupported backend")
}
