package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/core/config"
	"go-gin-gorm-crm/internal/core/server"
	"go-gin-gorm-crm/internal/transport/http/ez"
	"go-gin-gorm-crm/internal/transport/http/handler"
	mdw "go-gin-gorm-crm/internal/transport/http/middleware"
)

// Deps wires the engines.
type Deps struct {
	Log     *zap.Logger
	JWT     *auth.JWTer
	Handler handler.Deps
	Limits  config.HTTP
}

// Modules returns every handler module of the application.
func Modules(d handler.Deps) *Registry {
	r := &Registry{}
	r.Register(
		handler.NewAuthHandler(d),
		handler.NewCustomerHandler(d),
		handler.NewContactHandler(d),
		handler.NewLeadHandler(d),
		handler.NewOpportunityHandler(d),
		handler.NewWorkItemHandler(d),
		handler.NewProductHandler(d),
		handler.NewUserHandler(d),
		handler.NewDashboardHandler(d),
	)
	return r
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := server.NewRouter(d.Log, d.Limits.CORSOrigins)
	use(r, d)

	api := r.Group("/api/v1")
	e := ez.New(api, d.Log, mdw.AuthJWT(d.JWT, nil))
	Modules(d.Handler).MountAPI(e)
	return r
}

// use installs the shared middleware chain plus /health and /metrics.
func use(r *gin.Engine, d Deps) {
	lim := d.Limits
	r.Use(
		mdw.RequestID(),
		mdw.Recovery(d.Log),
		mdw.RateLimitPerIP(rate.Limit(orF(lim.RateLimitRPS, 200)), orI(lim.RateLimitBurst, 400)),
		mdw.ConcurrencyLimit(orI64(lim.MaxConcurrent, 300)),
		mdw.MaxBodyBytes(orI64(lim.MaxBodyBytes, 16<<20)),
		mdw.Timeout(time.Duration(orI(lim.RequestTimeoutSec, 10))*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())
}

func orF(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func orI(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orI64(v, def int64) int64 {
	if v > 0 {
		return v
	}
	return def
}
