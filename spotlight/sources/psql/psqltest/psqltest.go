// Package psqltest opens throwaway in-memory stores for tests.
package psqltest

import (
	"context"
	"testing"

	"spotlight/spotlight/sources/psql"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase returns a migrated, private in-memory SQLite store.
func NewDatabase(t *testing.T) *psql.Database {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	handle := psql.FromGorm(db)
	t.Cleanup(handle.Close)
	return handle
}

// Seed inserts each record as-is.
func Seed(t *testing.T, db *psql.Database, records ...any) {
	t.Helper()
	conn, err := db.Conn(context.Background())
	if err != nil {
		t.Fatalf("failed to get connection: %v", err)
	}
	for _, rec := range records {
		if err := conn.Create(rec).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", rec, err)
		}
	}
}
