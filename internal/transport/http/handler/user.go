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

// UserHandler exposes read access on the API and full management on the
// admin surface.
type UserHandler struct{ base }

func NewUserHandler(d Deps) *UserHandler { return &UserHandler{base{d}} }

type roleURI struct {
	Role domain.UserRole `uri:"role" binding:"required,oneof=Admin Manager User ReadOnly"`
}

type passwordResetOut struct {
	ID    uint `json:"id"`
	Reset bool `json:"reset"`
}

func (h *UserHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[dto.PageQuery, dto.PagedResult[dto.UserDTO]]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Policy: auth.ManagerOrAdmin,
		Handler: func(c *gin.Context, in *dto.PageQuery) (dto.PagedResult[dto.UserDTO], error) {
			return h.svc().Users.GetAll(c.Request.Context(), in.PageNumber, in.PageSize)
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, *dto.UserDTO]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindURI,
		Policy: auth.ManagerOrAdmin,
		Handler: func(c *gin.Context, in *idURI) (*dto.UserDTO, error) {
			return h.svc().Users.GetByID(c.Request.Context(), in.ID)
		},
	})
}

func (h *UserHandler) MountAdmin(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[roleURI, []dto.UserDTO]{
		Method: http.MethodGet,
		Path:   "/users/role/:role",
		Binder: ez.BindURI,
		Policy: auth.AdminOnly,
		Handler: func(c *gin.Context, in *roleURI) ([]dto.UserDTO, error) {
			return h.svc().Users.GetByRole(c.Request.Context(), in.Role)
		},
	})
	ez.RegisterAction(e, ez.Action[dto.ResetPasswordDTO, passwordResetOut]{
		Method: http.MethodPut,
		Path:   "/users/:id/password",
		Binder: ez.BindJSON,
		Policy: auth.AdminOnly,
		Handler: func(c *gin.Context, in *dto.ResetPasswordDTO) (passwordResetOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return passwordResetOut{}, err
			}
			if err := h.svc().Users.ResetPassword(c.Request.Context(), id, in.NewPassword, actor(c)); err != nil {
				return passwordResetOut{}, err
			}
			return passwordResetOut{ID: id, Reset: true}, nil
		},
	})
	mountCrud(e, h.base, crudRoutes[dto.UserDTO, dto.CreateUserDTO, dto.UpdateUserDTO]{
		Path: "/users",
		Svc: func(s *service.Services) crudService[dto.UserDTO, dto.CreateUserDTO, dto.UpdateUserDTO] {
			return s.Users
		},
		Read:   auth.AdminOnly,
		Write:  auth.AdminOnly,
		Remove: auth.AdminOnly,
	})
}
