package router

import (
	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/core/server"
	"go-gin-gorm-crm/internal/transport/http/ez"
	mdw "go-gin-gorm-crm/internal/transport/http/middleware"
)

// NewAdminEngine serves /admin/v1; the whole group requires the Admin role.
func NewAdminEngine(d Deps) *gin.Engine {
	r := server.NewRouter(d.Log, d.Limits.CORSOrigins)
	use(r, d)

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(d.JWT, auth.AdminOnly))
	Modules(d.Handler).MountAdmin(ez.New(admin, d.Log, nil))
	return r
}
