package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/repo"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/transport/http/ez"
	mdw "go-gin-gorm-crm/internal/transport/http/middleware"
)

// Deps are shared by every handler; services are built per request on a
// fresh unit of work.
type Deps struct {
	DB       *gorm.DB
	Services service.Deps
	Log      *zap.Logger
}

type base struct{ d Deps }

func (b base) svc() *service.Services {
	return service.New(repo.NewUnitOfWork(b.d.DB), b.d.Services)
}

type idOut struct {
	ID uint `json:"id"`
}

type idURI struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

func actor(c *gin.Context) string {
	_, name := mdw.Identity(c)
	return name
}

// crudService is the contract every entity service offers.
type crudService[D, C, U any] interface {
	GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[D], error)
	Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[D], error)
	GetByID(ctx context.Context, id uint) (*D, error)
	Create(ctx context.Context, in C, actor string) (*D, error)
	Update(ctx context.Context, id uint, in U, actor string) (*D, error)
	Delete(ctx context.Context, id uint) error
}

type crudRoutes[D, C, U any] struct {
	Path   string
	Svc    func(*service.Services) crudService[D, C, U]
	Read   auth.Policy
	Write  auth.Policy
	Remove auth.Policy
}

// mountCrud registers list, search, get, create, update and delete for one
// entity under r.Path.
func mountCrud[D, C, U any](e ez.EZ, b base, r crudRoutes[D, C, U]) {
	ez.RegisterAction(e, ez.Action[dto.PageQuery, dto.PagedResult[D]]{
		Method: http.MethodGet,
		Path:   r.Path,
		Binder: ez.BindQuery,
		Policy: r.Read,
		Handler: func(c *gin.Context, in *dto.PageQuery) (dto.PagedResult[D], error) {
			return r.Svc(b.svc()).GetAll(c.Request.Context(), in.PageNumber, in.PageSize)
		},
	})
	ez.RegisterAction(e, ez.Action[dto.SearchQuery, dto.PagedResult[D]]{
		Method: http.MethodGet,
		Path:   r.Path + "/search",
		Binder: ez.BindQuery,
		Policy: r.Read,
		Handler: func(c *gin.Context, in *dto.SearchQuery) (dto.PagedResult[D], error) {
			return r.Svc(b.svc()).Search(c.Request.Context(), in.Term, in.PageNumber, in.PageSize)
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, *D]{
		Method: http.MethodGet,
		Path:   r.Path + "/:id",
		Binder: ez.BindURI,
		Policy: r.Read,
		Handler: func(c *gin.Context, in *idURI) (*D, error) {
			return r.Svc(b.svc()).GetByID(c.Request.Context(), in.ID)
		},
	})
	ez.RegisterAction(e, ez.Action[C, *D]{
		Method: http.MethodPost,
		Path:   r.Path,
		Binder: ez.BindJSON,
		Policy: r.Write,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *C) (*D, error) {
			return r.Svc(b.svc()).Create(c.Request.Context(), *in, actor(c))
		},
	})
	ez.RegisterAction(e, ez.Action[U, *D]{
		Method: http.MethodPut,
		Path:   r.Path + "/:id",
		Binder: ez.BindJSON,
		Policy: r.Write,
		Handler: func(c *gin.Context, in *U) (*D, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return r.Svc(b.svc()).Update(c.Request.Context(), id, *in, actor(c))
		},
	})
	ez.RegisterAction(e, ez.Action[idURI, idOut]{
		Method: http.MethodDelete,
		Path:   r.Path + "/:id",
		Binder: ez.BindURI,
		Policy: r.Remove,
		Handler: func(c *gin.Context, in *idURI) (idOut, error) {
			if err := r.Svc(b.svc()).Delete(c.Request.Context(), in.ID); err != nil {
				return idOut{}, err
			}
			return idOut{ID: in.ID}, nil
		},
	})
}
