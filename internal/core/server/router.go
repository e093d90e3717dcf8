package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter returns a bare gin engine with zap-backed panic recovery and
// CORS. An empty origins list allows any origin.
func NewRouter(l *zap.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.RecoveryWithZap(l, true))

	cc := cors.DefaultConfig()
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", "X-Request-ID")
	cc.ExposeHeaders = []string{"X-Request-ID"}
	r.Use(cors.New(cc))
	return r
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20,
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
