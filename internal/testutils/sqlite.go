package testutils

import (
	"path/filepath"
	"testing"

	"project-tracker-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupSQLite opens a migrated SQLite database in a temp dir that lives as
// long as the test. Transactions start with BEGIN IMMEDIATE so concurrent
// writers queue on the busy timeout instead of failing.
func SetupSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.db")
	dsn := "file:" + path + "?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate"

	db, err := database.Initialize(database.DriverSQLite, dsn, &database.Options{
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
