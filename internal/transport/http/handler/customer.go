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

type CustomerHandler struct{ base }

func NewCustomerHandler(d Deps) *CustomerHandler { return &CustomerHandler{base{d}} }

type customerStatusURI struct {
	Status domain.CustomerStatus `uri:"status" binding:"required,oneof=Active Inactive Suspended"`
}

func (h *CustomerHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[customerStatusURI, []dto.CustomerDTO]{
		Method: http.MethodGet,
		Path:   "/customers/status/:status",
		Binder: ez.BindURI,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, in *customerStatusURI) ([]dto.CustomerDTO, error) {
			return h.svc().Customers.GetByStatus(c.Request.Context(), in.Status)
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, []dto.ContactDTO]{
		Method: http.MethodGet,
		Path:   "/customers/:id/contacts",
		Binder: ez.BindURI,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, in *idURI) ([]dto.ContactDTO, error) {
			return h.svc().Contacts.GetByCustomer(c.Request.Context(), in.ID)
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, []dto.OpportunityDTO]{
		Method: http.MethodGet,
		Path:   "/customers/:id/opportunities",
		Binder: ez.BindURI,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, in *idURI) ([]dto.OpportunityDTO, error) {
			s := h.svc()
			if _, err := s.Customers.GetByID(c.Request.Context(), in.ID); err != nil {
				return nil, err
			}
			return s.Opportunities.GetByCustomer(c.Request.Context(), in.ID)
		},
	})
	mountCrud(e, h.base, crudRoutes[dto.CustomerDTO, dto.CreateCustomerDTO, dto.UpdateCustomerDTO]{
		Path: "/customers",
		Svc: func(s *service.Services) crudService[dto.CustomerDTO, dto.CreateCustomerDTO, dto.UpdateCustomerDTO] {
			return s.Customers
		},
		Read:   auth.ReadOnlyOrAbove,
		Write:  auth.UserOrAbove,
		Remove: auth.ManagerOrAdmin,
	})
}

type ContactHandler struct{ base }

func NewContactHandler(d Deps) *ContactHandler { return &ContactHandler{base{d}} }

func (h *ContactHandler) MountAPI(e ez.EZ) {
	mountCrud(e, h.base, crudRoutes[dto.ContactDTO, dto.CreateContactDTO, dto.UpdateContactDTO]{
		Path: "/contacts",
		Svc: func(s *service.Services) crudService[dto.ContactDTO, dto.CreateContactDTO, dto.UpdateContactDTO] {
			return s.Contacts
		},
		Read:   auth.ReadOnlyOrAbove,
		Write:  auth.UserOrAbove,
		Remove: auth.ManagerOrAdmin,
	})
}
