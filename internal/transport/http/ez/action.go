package ez

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-gorm-crm/internal/core/auth"
	mdw "go-gin-gorm-crm/internal/transport/http/middleware"
	resp "go-gin-gorm-crm/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindURI   Binder = "uri"
	BindNone  Binder = "none"
)

// EZ registers actions on a router group. Non-public actions run behind
// authn first.
type EZ struct {
	g     *gin.RouterGroup
	log   *zap.Logger
	authn gin.HandlerFunc
}

func New(g *gin.RouterGroup, l *zap.Logger, authn gin.HandlerFunc) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l, authn: authn}
}

// Action is one endpoint: I is the bound input, O the envelope data.
type Action[I any, O any] struct {
	Method string
	Path   string
	Binder Binder
	// Public skips authentication. Otherwise a login is required and, when
	// Policy is non-empty, a role it allows.
	Public bool
	Policy auth.Policy
	// Status is the success status, 200 when zero.
	Status  int
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		if !a.Public && !a.Policy.Allows(c.GetString(mdw.KeyRole)) {
			resp.Abort(c, resp.CodeForbidden, "forbidden")
			return
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		case BindURI:
			bindErr = c.ShouldBindUri(&in)
		}
		if bindErr != nil {
			code, msg := resp.CodeBadRequest, bindErr.Error()
			var mbe *http.MaxBytesError
			if errors.As(bindErr, &mbe) {
				code, msg = Classify(bindErr)
			}
			resp.Abort(c, code, msg)
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.fail(c, err)
			return
		}
		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, resp.OK(out))
	}

	handlers := make([]gin.HandlerFunc, 0, 2)
	if !a.Public && e.authn != nil {
		handlers = append(handlers, e.authn)
	}
	handlers = append(handlers, h)
	method := strings.ToUpper(a.Method)
	if method == "" {
		method = http.MethodPost
	}
	e.g.Handle(method, a.Path, handlers...)
}

func (e EZ) fail(c *gin.Context, err error) {
	code, msg := Classify(err)
	_ = c.Error(err)
	if code >= resp.CodeServerError {
		e.log.Error("request failed",
			zap.String("rid", mdw.RequestIDFrom(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	resp.Abort(c, code, msg)
}

// ParamID parses a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, BadRequest("invalid " + name)
	}
	return uint(v), nil
}
