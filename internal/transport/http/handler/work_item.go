package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/transport/http/ez"
	mdw "go-gin-gorm-crm/internal/transport/http/middleware"
)

type WorkItemHandler struct{ base }

func NewWorkItemHandler(d Deps) *WorkItemHandler { return &WorkItemHandler{base{d}} }

func (h *WorkItemHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, []dto.WorkItemDTO]{
		Method: http.MethodGet,
		Path:   "/work-items/overdue",
		Binder: ez.BindNone,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, _ *struct{}) ([]dto.WorkItemDTO, error) {
			return h.svc().WorkItems.GetOverdue(c.Request.Context())
		},
	})
	ez.RegisterAction(e, ez.Action[struct{}, []dto.WorkItemDTO]{
		Method: http.MethodGet,
		Path:   "/work-items/mine",
		Binder: ez.BindNone,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, _ *struct{}) ([]dto.WorkItemDTO, error) {
			uid, _ := mdw.Identity(c)
			return h.svc().WorkItems.GetByAssignedUser(c.Request.Context(), uid)
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, *dto.WorkItemDTO]{
		Method: http.MethodPost,
		Path:   "/work-items/:id/complete",
		Binder: ez.BindURI,
		Policy: auth.UserOrAbove,
		Handler: func(c *gin.Context, in *idURI) (*dto.WorkItemDTO, error) {
			return h.svc().WorkItems.Complete(c.Request.Context(), in.ID, actor(c))
		},
	})
	mountCrud(e, h.base, crudRoutes[dto.WorkItemDTO, dto.CreateWorkItemDTO, dto.UpdateWorkItemDTO]{
		Path: "/work-items",
		Svc: func(s *service.Services) crudService[dto.WorkItemDTO, dto.CreateWorkItemDTO, dto.UpdateWorkItemDTO] {
			return s.WorkItems
		},
		Read:   auth.ReadOnlyOrAbove,
		Write:  auth.UserOrAbove,
		Remove: auth.ManagerOrAdmin,
	})
}
