package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"user_profiles", "sessions", "messages", "progress_events"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		assert.NoError(t, err, table)
	}

	// Re-running migrations is safe.
	assert.NoError(t, Migrate(database))
}

func TestForeignKeysEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO messages (session_id, role, content, created_at) VALUES ('missing', 'user', 'hi', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}
