package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/transport/http/ez"
)

type DashboardHandler struct{ base }

func NewDashboardHandler(d Deps) *DashboardHandler { return &DashboardHandler{base{d}} }

func (h *DashboardHandler) MountAPI(e ez.EZ) {
	h.mount(e, auth.ReadOnlyOrAbove)
}

func (h *DashboardHandler) MountAdmin(e ez.EZ) {
	h.mount(e, auth.AdminOnly)
}

func (h *DashboardHandler) mount(e ez.EZ, p auth.Policy) {
	ez.RegisterAction(e, ez.Action[struct{}, *domain.DashboardStats]{
		Method: http.MethodGet,
		Path:   "/dashboard/stats",
		Binder: ez.BindNone,
		Policy: p,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.DashboardStats, error) {
			return h.svc().Dashboard.Stats(c.Request.Context())
		},
	})
	ez.RegisterAction(e, ez.Action[struct{}, []domain.StageSummary]{
		Method: http.MethodGet,
		Path:   "/dashboard/pipeline",
		Binder: ez.BindNone,
		Policy: p,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.StageSummary, error) {
			return h.svc().Dashboard.Pipeline(c.Request.Context())
		},
	})
}
