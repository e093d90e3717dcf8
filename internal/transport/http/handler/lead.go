package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/transport/http/ez"
)

type LeadHandler struct{ base }

func NewLeadHandler(d Deps) *LeadHandler { return &LeadHandler{base{d}} }

type leadStatusURI struct {
	Status domain.LeadStatus `uri:"status" binding:"required,oneof=New Contacted Qualified Unqualified Converted Lost"`
}

func (h *LeadHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[leadStatusURI, []dto.LeadDTO]{
		Method: http.MethodGet,
		Path:   "/leads/status/:status",
		Binder: ez.BindURI,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, in *leadStatusURI) ([]dto.LeadDTO, error) {
			return h.svc().Leads.GetByStatus(c.Request.Context(), in.Status)
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, *dto.ConvertLeadResult]{
		Method: http.MethodPost,
		Path:   "/leads/:id/convert",
		Binder: ez.BindURI,
		Policy: auth.UserOrAbove,
		Handler: func(c *gin.Context, in *idURI) (*dto.ConvertLeadResult, error) {
			return h.svc().Leads.Convert(c.Request.Context(), in.ID, actor(c))
		},
	})
	mountCrud(e, h.base, crudRoutes[dto.LeadDTO, dto.CreateLeadDTO, dto.UpdateLeadDTO]{
		Path: "/leads",
		Svc: func(s *service.Services) crudService[dto.LeadDTO, dto.CreateLeadDTO, dto.UpdateLeadDTO] {
			return s.Leads
		},
		Read:   auth.ReadOnlyOrAbove,
		Write:  auth.UserOrAbove,
		Remove: auth.ManagerOrAdmin,
	})
}
