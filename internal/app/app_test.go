package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-gin-gorm-crm/internal/core/config"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/repo"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWT{Secret: "s", Issuer: "crm", AccessTokenTTLMin: 5},
		DB: config.DB{
			Driver:       "sqlite",
			DSN:          ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			AutoMigrate:  true,
			LogLevel:     "silent",
		},
		Seed: config.Seed{AdminUsername: "root", AdminEmail: "root@example.com", AdminPassword: "root-pass"},
	}
}

func TestOpenMigratesAndSeeds(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis = config.Redis{Addr: mr.Addr(), StatsTTLSec: 30}

	a, err := Open(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	require.NotNil(t, a.Cache, "reachable redis enables the cache")
	assert.Equal(t, int64(5*60), int64(a.JWT.TTL.Seconds()))

	admin, err := repo.NewUnitOfWork(a.DB).Users().GetByUsername(context.Background(), "root")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	d := a.RouterDeps()
	assert.Same(t, a.JWT, d.JWT)
	assert.Same(t, a.Cache, d.Handler.Services.Cache)
	assert.Equal(t, 30, int(d.Handler.Services.StatsTTL.Seconds()))
}

func TestOpenWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig()
	cfg.Redis = config.Redis{Addr: addr}
	cfg.Seed = config.Seed{}

	a, err := Open(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	assert.Nil(t, a.Cache, "an unreachable cache is skipped")
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Driver = "oracle"
	_, err := Open(context.Background(), cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "open database")
}
