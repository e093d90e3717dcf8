package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"go-gin-gorm-crm/internal/app"
	"go-gin-gorm-crm/internal/core/config"
	"go-gin-gorm-crm/internal/core/server"
	"go-gin-gorm-crm/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := app.NewLogger(cfg)
	defer cleanup()

	a, err := app.Open(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}
	defer a.Close()

	h := cfg.App.HTTP
	addr := server.Addr(h.Host, h.Port)
	srv := server.BuildServer(
		addr, router.NewAPIEngine(a.RouterDeps()),
		time.Duration(h.ReadTimeoutSec)*time.Second,
		time.Duration(h.WriteTimeoutSec)*time.Second,
		time.Duration(h.IdleTimeoutSec)*time.Second,
	)

	host4human := h.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(h.Port)
	log.Info("crm api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	if err := app.Serve(log, "crm api", srv); err != nil {
		log.Error("crm api exited", zap.Error(err))
	}
}
