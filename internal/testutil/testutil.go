// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/core/database"
)

// NewDB opens a migrated in-memory SQLite database private to t. A single
// connection keeps the in-memory database alive.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
		Logger:       zaptest.NewLogger(t),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Clock is a settable time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock { return &Clock{now: start.UTC()} }

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
