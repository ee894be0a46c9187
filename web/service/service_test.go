package service

import (
	"path/filepath"
	"testing"

	"sweet-shop/database"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a throwaway store seeded with the default accounts and
// catalog.
func setupTestDB(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}
