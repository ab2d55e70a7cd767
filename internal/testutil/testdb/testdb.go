// Package testdb opens throwaway sqlite databases for tests.
package testdb

import (
	"testing"

	"gorm.io/gorm"

	"github.com/gdg-garage/camp-profile-api/internal/database"
)

// New returns a migrated in-memory database private to t. The pool is
// limited to one connection so every query sees the same memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}
