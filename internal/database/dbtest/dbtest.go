// Package dbtest provides a migrated in-memory database for tests.
package dbtest

import (
	"testing"

	"github.com/justsurfingit/job-board/internal/database"
	"gorm.io/gorm"
)

// New returns a fresh, migrated SQLite database that lives for the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
