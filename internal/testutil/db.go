// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
// A single connection keeps the in-memory database alive and serializes writes.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&domain.Payment{},
		&domain.Coupon{},
		&domain.PaymentConfig{},
		&domain.PaymentSetting{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
