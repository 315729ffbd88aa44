package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesDailyResults(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'daily_results'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "daily_results", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must be a no-op.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestDailyResults_PrimaryKeyEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO daily_results (user_id, date, total_work_time, total_break_time, updated_at)
		VALUES ('u1', '2026-03-02', 100, 10, '2026-03-02T10:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(
		`INSERT INTO daily_results (user_id, date, total_work_time, total_break_time, updated_at)
		VALUES ('u1', '2026-03-02', 200, 20, '2026-03-02T11:00:00Z')`)
	assert.Error(t, err, "duplicate (user_id, date) must be rejected without ON CONFLICT")
}
