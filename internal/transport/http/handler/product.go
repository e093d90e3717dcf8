package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/transport/http/ez"
)

// ProductHandler serves the catalogue; only managers and admins change it.
type ProductHandler struct{ base }

func NewProductHandler(d Deps) *ProductHandler { return &ProductHandler{base{d}} }

type categoryURI struct {
	Category string `uri:"category" binding:"required,max=100"`
}

func (h *ProductHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, []dto.ProductDTO]{
		Method: http.MethodGet,
		Path:   "/products/active",
		Binder: ez.BindNone,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, _ *struct{}) ([]dto.ProductDTO, error) {
			return h.svc().Products.GetActive(c.Request.Context())
		},
	})
	ez.RegisterAction(e, ez.Action[categoryURI, []dto.ProductDTO]{
		Method: http.MethodGet,
		Path:   "/products/category/:category",
		Binder: ez.BindURI,
		Policy: auth.ReadOnlyOrAbove,
		Handler: func(c *gin.Context, in *categoryURI) ([]dto.ProductDTO, error) {
			return h.svc().Products.GetByCategory(c.Request.Context(), in.Category)
		},
	})
	mountCrud(e, h.base, crudRoutes[dto.ProductDTO, dto.CreateProductDTO, dto.UpdateProductDTO]{
		Path: "/products",
		Svc: func(s *service.Services) crudService[dto.ProductDTO, dto.CreateProductDTO, dto.UpdateProductDTO] {
			return s.Products
		},
		Read:   auth.ReadOnlyOrAbove,
		Write:  auth.ManagerOrAdmin,
		Remove: auth.ManagerOrAdmin,
	})
}
