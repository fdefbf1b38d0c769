package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorecall/algorecall/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// db.Open limits the pool to a single connection, so the in-memory database
// is stable for the lifetime of the test.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open("file::memory:")
	require.NoError(t, err, "failed to open test database")
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
