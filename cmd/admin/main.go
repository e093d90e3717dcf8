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

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, router.NewAdminEngine(a.RouterDeps()), 5*time.Second, 10*time.Second, 60*time.Second)

	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("crm admin starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	if err := app.Serve(log, "crm admin", srv); err != nil {
		log.Error("crm admin exited", zap.Error(err))
	}
}
