package testutil

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"patient-registry/config"
	"patient-registry/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Logger returns a logger that discards output.
func Logger(tb testing.TB) *logrus.Logger {
	tb.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// RawDB opens an empty SQLite file private to the test.
func RawDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(tb.TempDir(), "registry.db"),
	}
	db, err := database.NewConnection(cfg, false)
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// DB opens a test database with the schema created and specialists seeded.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db := RawDB(tb)
	if _, err := database.Initialize(context.Background(), db); err != nil {
		tb.Fatalf("failed to init test db: %v", err)
	}
	return db
}
