package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an isolated in-memory database, migrated for all models.
// The shared cache keeps the database alive across pooled connections; the
// per-test name keeps tests isolated from each other.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

// newTestCategory persists a category for products to hang off
func newTestCategory(t *testing.T, db *gorm.DB, label string) *ProductCategory {
	t.Helper()

	category := &ProductCategory{Label: label}
	require.NoError(t, SaveProductCategory(db, category))
	return category
}
