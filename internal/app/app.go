// Package app assembles the process: logger, database, cache, token issuer
// and the HTTP server lifecycle shared by both binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/core/cache"
	"go-gin-gorm-crm/internal/core/config"
	"go-gin-gorm-crm/internal/core/database"
	"go-gin-gorm-crm/internal/core/logger"
	"go-gin-gorm-crm/internal/repo"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/transport/http/handler"
	"go-gin-gorm-crm/internal/transport/http/router"
)

type App struct {
	Cfg   *config.Config
	Log   *zap.Logger
	DB    *gorm.DB
	Cache *cache.Cache
	JWT   *auth.JWTer

	closers []func()
}

// NewLogger builds the process logger from cfg and redirects the standard
// library logger into it. The returned func flushes and restores.
func NewLogger(cfg *config.Config) (*zap.Logger, func()) {
	var (
		l       *zap.Logger
		cleanup func()
	)
	if f := cfg.Log.File; f.Enable {
		l, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   f.Filename,
			MaxSizeMB:  f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAgeDays: f.MaxAgeDays,
			Compress:   f.Compress,
		})
	} else {
		l, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	restore := logger.RedirectStdLog(l, zapcore.InfoLevel)
	return l, func() {
		restore()
		cleanup()
	}
}

// Open connects the database, migrates and seeds it when configured, and
// connects the cache. An unreachable cache is logged and skipped.
func Open(ctx context.Context, cfg *config.Config, l *zap.Logger) (*App, error) {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		ConnectRetries:     cfg.DB.ConnectRetries,
		Logger:             l,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a := &App{
		Cfg: cfg,
		Log: l,
		DB:  db,
		JWT: &auth.JWTer{
			Secret: []byte(cfg.JWT.Secret),
			Issuer: cfg.JWT.Issuer,
			TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		},
	}
	if sqlDB, e := db.DB(); e == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			a.Close()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
		l.Info("automigrate done")
	}

	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := c.Ping(pctx)
		cancel()
		if err != nil {
			l.Warn("redis unavailable, dashboard cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = c.Close()
		} else {
			a.Cache = c
			a.closers = append(a.closers, func() { _ = c.Close() })
			l.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		}
	}

	if err := a.seed(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) seed(ctx context.Context) error {
	s := a.Cfg.Seed
	if s.AdminUsername == "" {
		return nil
	}
	svc := service.New(repo.NewUnitOfWork(a.DB), a.ServiceDeps())
	if _, err := svc.Auth.EnsureAdmin(ctx, s.AdminUsername, s.AdminEmail, s.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (a *App) ServiceDeps() service.Deps {
	return service.Deps{
		JWT:      a.JWT,
		Cache:    a.Cache,
		Log:      a.Log,
		StatsTTL: time.Duration(a.Cfg.Redis.StatsTTLSec) * time.Second,
	}
}

func (a *App) RouterDeps() router.Deps {
	return router.Deps{
		Log: a.Log,
		JWT: a.JWT,
		Handler: handler.Deps{
			DB:       a.DB,
			Services: a.ServiceDeps(),
			Log:      a.Log,
		},
		Limits: a.Cfg.App.HTTP,
	}
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Serve runs srv until SIGINT or SIGTERM, then shuts it down gracefully.
func Serve(l *zap.Logger, name string, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	l.Info(name+" started", zap.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("%s shutdown: %w", name, err)
	}
	l.Info(name + " stopped gracefully")
	return nil
}
