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

type OpportunityHandler struct{ base }

func NewOpportunityHandler(d Deps) *OpportunityHandler { return &OpportunityHandler{base{d}} }

type stageURI struct {
	Stage domain.OpportunityStage `uri:"stage" binding:"required,oneof=Prospecting Qualification NeedsAnalysis Proposal Negotiation ClosedWon ClosedLost"`
}

func (h *OpportunityHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[stageURI, []dto.OpportunityDTO]{
		Method: http.MethodGet,
		Path:   "/opportunities/stage/:stage",
		Binder: ez.BindURI,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, in *stageURI) ([]dto.OpportunityDTO, error) {
			return h.svc().Opportunities.GetByStage(c.Request.Context(), in.Stage)
		},
	})
	ez.RegisterAction(e, ez.Action[dto.UpdateStageDTO, *dto.OpportunityDTO]{
		Method: http.MethodPut,
		Path:   "/opportunities/:id/stage",
		Binder: ez.BindJSON,
		Policy: auth.UserOrAbove,
		Handler: func(c *gin.Context, in *dto.UpdateStageDTO) (*dto.OpportunityDTO, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc().Opportunities.UpdateStage(c.Request.Context(), id, in.Stage, actor(c))
		},
	})
	mountCrud(e, h.base, crudRoutes[dto.OpportunityDTO, dto.CreateOpportunityDTO, dto.UpdateOpportunityDTO]{
		Path: "/opportunities",
		Svc: func(s *service.Services) crudService[dto.OpportunityDTO, dto.CreateOpportunityDTO, dto.UpdateOpportunityDTO] {
			return s.Opportunities
		},
		Read:   auth.ReadOnlyOrAbove,
		Write:  auth.UserOrAbove,
		Remove: auth.ManagerOrAdmin,
	})
}
