package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/transport/http/ez"
	mdw "go-gin-gorm-crm/internal/transport/http/middleware"
)

type AuthHandler struct{ base }

func NewAuthHandler(d Deps) *AuthHandler { return &AuthHandler{base{d}} }

// Priority mounts auth routes first.
func (h *AuthHandler) Priority() int { return 10 }

type passwordChangedOut struct {
	Changed bool `json:"changed"`
}

func (h *AuthHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[dto.LoginDTO, *dto.LoginResponse]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Public: true,
		Handler: func(c *gin.Context, in *dto.LoginDTO) (*dto.LoginResponse, error) {
			return h.svc().Auth.Login(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[struct{}, *dto.UserDTO]{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*dto.UserDTO, error) {
			uid, _ := mdw.Identity(c)
			return h.svc().Auth.Me(c.Request.Context(), uid)
		},
	})
	ez.RegisterAction(e, ez.Action[dto.ChangePasswordDTO, passwordChangedOut]{
		Method: http.MethodPut,
		Path:   "/auth/password",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.ChangePasswordDTO) (passwordChangedOut, error) {
			uid, name := mdw.Identity(c)
			if err := h.svc().Auth.ChangePassword(c.Request.Context(), uid, *in, name); err != nil {
				return passwordChangedOut{}, err
			}
			return passwordChangedOut{Changed: true}, nil
		},
	})
}
