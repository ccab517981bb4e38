package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"llm-prompt-repository/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLite pragmas applied to every pooled connection. Writers wait on the
// database lock instead of failing with SQLITE_BUSY.
const pragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// Open ensures the SQLite file at path and its schema exist and returns a
// handle to it. It is safe to call on every process start.
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.New("open database: empty path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("open database: create parent dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path+"?"+pragmas), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Prompt{}); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("open database: migrate schema: %w", err)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
