package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/svernekar/examportal/config"
	"github.com/svernekar/examportal/internal/model"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database. The pool is pinned
// to one connection because every new sqlite :memory: connection would be
// a separate empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Test{},
		&model.TestQuestion{},
		&model.TestRecord{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWT{
			Secret: "test-secret",
			Expiry: 48 * time.Hour,
		},
	}
}
