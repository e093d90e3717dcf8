package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-gin-gorm-crm/internal/domain"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		user, pass string
		want       string
	}{
		{
			name: "native dsn untouched",
			in:   "u:p@tcp(db:3306)/crm?parseTime=true",
			want: "u:p@tcp(db:3306)/crm?parseTime=true",
		},
		{
			name: "url with jdbc parameters",
			in:   "mysql://u:p@localhost:3306/crm?useSSL=false&serverTimezone=UTC&characterEncoding=utf8",
			want: "u:p@tcp(localhost:3306)/crm?charset=utf8&loc=UTC&parseTime=true&tls=false",
		},
		{
			name: "jdbc prefix and credentials in query",
			in:   "jdbc:mysql://localhost:3306/crm?user=a&password=b",
			want: "a:b@tcp(localhost:3306)/crm?charset=utf8mb4&parseTime=true",
		},
		{
			name: "explicit credentials win",
			in:   "mysql://u:p@h:1/db",
			user: "x", pass: "y",
			want: "x:y@tcp(h:1)/db?charset=utf8mb4&parseTime=true",
		},
		{
			name: "no credentials",
			in:   "mysql://h:1/db",
			want: "tcp(h:1)/db?charset=utf8mb4&parseTime=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeMySQLDSN(tt.in, tt.user, tt.pass))
		})
	}
}

func TestNewGormUnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewGormSQLiteAndMigrate(t *testing.T) {
	db, err := NewGorm(Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
		Logger:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(db))
	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasColumn(&domain.Customer{}, "is_deleted"))
	assert.True(t, db.Migrator().HasIndex(&domain.User{}, "idx_users_username"))
}
