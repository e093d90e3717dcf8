package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/core/config"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/repo"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/testutil"
	"go-gin-gorm-crm/internal/transport/http/handler"
	"go-gin-gorm-crm/internal/transport/http/router"
)

func init() { gin.SetMode(gin.TestMode) }

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type server struct {
	t     *testing.T
	db    *gorm.DB
	api   *gin.Engine
	admin *gin.Engine
	deps  router.Deps
}

func newServer(t *testing.T, limits config.HTTP) *server {
	t.Helper()
	db := testutil.NewDB(t)
	log := zaptest.NewLogger(t)
	jwt := &auth.JWTer{Secret: []byte("router-test"), Issuer: "crm", TTL: time.Hour}
	d := router.Deps{
		Log: log,
		JWT: jwt,
		Handler: handler.Deps{
			DB:       db,
			Services: service.Deps{JWT: jwt, Log: log},
			Log:      log,
		},
		Limits: limits,
	}
	s := &server{t: t, db: db, api: router.NewAPIEngine(d), admin: router.NewAdminEngine(d), deps: d}

	svc := service.New(repo.NewUnitOfWork(db), d.Handler.Services)
	_, err := svc.Auth.EnsureAdmin(context.Background(), "admin", "admin@example.com", "admin-pass")
	require.NoError(t, err)
	for _, role := range []domain.UserRole{domain.RoleManager, domain.RoleUser, domain.RoleReadOnly} {
		name := strings.ToLower(string(role))
		_, err := service.New(repo.NewUnitOfWork(db), d.Handler.Services).Users.Create(context.Background(), dto.CreateUserDTO{
			Username: name,
			Email:    name + "@example.com",
			Password: name + "-pass",
			Role:     role,
		}, "admin")
		require.NoError(t, err)
	}
	return s
}

func (s *server) do(engine http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *server) login(username, password string) string {
	s.t.Helper()
	w, env := s.do(s.api, http.MethodPost, "/api/v1/auth/login", "", dto.LoginDTO{Username: username, Password: password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var out dto.LoginResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(s.t, out.Token)
	return out.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestHealthAndMetrics(t *testing.T) {
	s := newServer(t, config.HTTP{})

	w, _ := s.do(s.api, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = s.do(s.api, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "crm_http_requests_total")
}

func TestCustomerLifecycleOverHTTP(t *testing.T) {
	s := newServer(t, config.HTTP{})
	token := s.login("manager", "manager-pass")

	w, env := s.do(s.api, http.MethodPost, "/api/v1/customers", token, map[string]any{
		"companyName": "Acme",
		"email":       "a@acme.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 0, env.Code)
	created := decode[dto.CustomerDTO](t, env.Data)
	assert.Equal(t, "manager", created.CreatedBy, "the actor is the logged-in user")
	assert.Equal(t, domain.CustomerCompany, created.Type)

	w, env = s.do(s.api, http.MethodGet, "/api/v1/customers?pageNumber=1&pageSize=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.PagedResult[dto.CustomerDTO]](t, env.Data)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Acme", page.Data[0].CompanyName)

	w, env = s.do(s.api, http.MethodGet, "/api/v1/customers?pageNumber=9223372036854775807&pageSize=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	far := decode[dto.PagedResult[dto.CustomerDTO]](t, env.Data)
	assert.Equal(t, 1, far.TotalCount)
	assert.Empty(t, far.Data, "a page far past the end is empty")

	w, env = s.do(s.api, http.MethodGet, "/api/v1/customers/search?term=acm&pageNumber=9223372036854775807", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode[dto.PagedResult[dto.CustomerDTO]](t, env.Data).Data)

	w, env = s.do(s.api, http.MethodGet, "/api/v1/customers/search?term=acm", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.PagedResult[dto.CustomerDTO]](t, env.Data).TotalCount)

	path := fmt.Sprintf("/api/v1/customers/%d", created.ID)
	w, env = s.do(s.api, http.MethodPut, path, token, map[string]any{
		"companyName": "Acme Corp",
		"email":       "info@acme.com",
		"type":        "Company",
		"status":      "Inactive",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.CustomerDTO](t, env.Data)
	assert.Equal(t, domain.CustomerInactive, updated.Status)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "manager", *updated.UpdatedBy)

	w, env = s.do(s.api, http.MethodGet, "/api/v1/customers/status/Inactive", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.CustomerDTO](t, env.Data), 1)

	w, _ = s.do(s.api, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(s.api, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 404, env.Code)

	w, _ = s.do(s.api, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginOverHTTP(t *testing.T) {
	s := newServer(t, config.HTTP{})

	w, env := s.do(s.api, http.MethodPost, "/api/v1/auth/login", "", dto.LoginDTO{Username: "user", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 401, env.Code)

	w, _ = s.do(s.api, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "user"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "password is required")

	token := s.login("user", "user-pass")
	w, env = s.do(s.api, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[dto.UserDTO](t, env.Data)
	assert.Equal(t, "user", me.Username)
	assert.NotNil(t, me.LastLoginDate)

	w, _ = s.do(s.api, http.MethodPut, "/api/v1/auth/password", token, dto.ChangePasswordDTO{CurrentPassword: "user-pass", NewPassword: "changed-pass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.login("user", "changed-pass")
}

func TestRolePolicies(t *testing.T) {
	s := newServer(t, config.HTTP{})
	readOnly := s.login("readonly", "readonly-pass")
	user := s.login("user", "user-pass")
	manager := s.login("manager", "manager-pass")
	customer := map[string]any{"companyName": "Acme", "email": "a@acme.com"}

	tests := []struct {
		name   string
		token  string
		method string
		path   string
		body   any
		want   int
	}{
		{"anonymous read", "", http.MethodGet, "/api/v1/customers", nil, http.StatusUnauthorized},
		{"read-only reads", readOnly, http.MethodGet, "/api/v1/customers", nil, http.StatusOK},
		{"read-only cannot create", readOnly, http.MethodPost, "/api/v1/customers", customer, http.StatusForbidden},
		{"user creates", user, http.MethodPost, "/api/v1/customers", customer, http.StatusCreated},
		{"user cannot delete", user, http.MethodDelete, "/api/v1/customers/1", nil, http.StatusForbidden},
		{"user cannot write products", user, http.MethodPost, "/api/v1/products", map[string]any{"name": "Widget"}, http.StatusForbidden},
		{"manager writes products", manager, http.MethodPost, "/api/v1/products", map[string]any{"name": "Widget", "price": "9.99"}, http.StatusCreated},
		{"user cannot list users", user, http.MethodGet, "/api/v1/users", nil, http.StatusForbidden},
		{"manager lists users", manager, http.MethodGet, "/api/v1/users", nil, http.StatusOK},
		{"read-only sees dashboard", readOnly, http.MethodGet, "/api/v1/dashboard/stats", nil, http.StatusOK},
		{"manager deletes missing", manager, http.MethodDelete, "/api/v1/customers/999", nil, http.StatusNotFound},
		{"manager deletes", manager, http.MethodDelete, "/api/v1/customers/1", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := s.do(s.api, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestValidationOverHTTP(t *testing.T) {
	s := newServer(t, config.HTTP{})
	token := s.login("user", "user-pass")

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"bad email", http.MethodPost, "/api/v1/customers", map[string]any{"companyName": "Acme", "email": "nope"}},
		{"bad enum", http.MethodPost, "/api/v1/customers", map[string]any{"email": "a@acme.com", "status": "Sleeping"}},
		{"malformed json", http.MethodPost, "/api/v1/customers", "{"},
		{"page size too large", http.MethodGet, "/api/v1/customers?pageSize=500", nil},
		{"search without term", http.MethodGet, "/api/v1/customers/search", nil},
		{"non-numeric id", http.MethodGet, "/api/v1/customers/abc", nil},
		{"contact for missing customer", http.MethodPost, "/api/v1/contacts", map[string]any{"customerId": 42, "firstName": "A", "lastName": "B"}},
		{"unknown stage", http.MethodPut, "/api/v1/opportunities/1/stage", map[string]any{"stage": "Done"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(s.api, tt.method, tt.path, token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, 400, env.Code)
		})
	}
}

func TestSalesFlowOverHTTP(t *testing.T) {
	s := newServer(t, config.HTTP{})
	token := s.login("user", "user-pass")

	w, env := s.do(s.api, http.MethodPost, "/api/v1/leads", token, map[string]any{
		"firstName": "Dana", "lastName": "Cole", "companyName": "Globex", "email": "dana@globex.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	lead := decode[dto.LeadDTO](t, env.Data)

	w, env = s.do(s.api, http.MethodPost, fmt.Sprintf("/api/v1/leads/%d/convert", lead.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	conv := decode[dto.ConvertLeadResult](t, env.Data)
	assert.Equal(t, domain.LeadConverted, conv.Lead.Status)

	w, env = s.do(s.api, http.MethodPost, "/api/v1/opportunities", token, map[string]any{
		"name": "Globex deal", "customerId": conv.Customer.ID, "amount": "2500.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	opp := decode[dto.OpportunityDTO](t, env.Data)

	w, env = s.do(s.api, http.MethodPut, fmt.Sprintf("/api/v1/opportunities/%d/stage", opp.ID), token, map[string]any{"stage": "Negotiation"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, domain.StageNegotiation, decode[dto.OpportunityDTO](t, env.Data).Stage)

	w, env = s.do(s.api, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d/opportunities", conv.Customer.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.OpportunityDTO](t, env.Data), 1)

	_, env = s.do(s.api, http.MethodGet, "/api/v1/auth/me", token, nil)
	me := decode[dto.UserDTO](t, env.Data)
	w, env = s.do(s.api, http.MethodPost, "/api/v1/work-items", token, map[string]any{
		"title": "Send proposal", "assignedUserId": me.ID, "opportunityId": opp.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode[dto.WorkItemDTO](t, env.Data)

	w, env = s.do(s.api, http.MethodGet, "/api/v1/work-items/mine", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.WorkItemDTO](t, env.Data), 1)

	w, env = s.do(s.api, http.MethodPost, fmt.Sprintf("/api/v1/work-items/%d/complete", item.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, domain.WorkItemCompleted, decode[dto.WorkItemDTO](t, env.Data).Status)

	w, env = s.do(s.api, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[domain.DashboardStats](t, env.Data)
	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.EqualValues(t, 1, stats.OpenOpportunities)
	assert.Equal(t, "2500.5", stats.PipelineValue.String())
	assert.EqualValues(t, 0, stats.PendingWorkItems)
}

func TestAdminEngine(t *testing.T) {
	s := newServer(t, config.HTTP{})
	admin := s.login("admin", "admin-pass")
	manager := s.login("manager", "manager-pass")

	w, _ := s.do(s.admin, http.MethodGet, "/admin/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(s.admin, http.MethodGet, "/admin/v1/users", manager, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(s.admin, http.MethodGet, "/admin/v1/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[dto.PagedResult[dto.UserDTO]](t, env.Data).TotalCount)

	w, env = s.do(s.admin, http.MethodPost, "/admin/v1/users", admin, dto.CreateUserDTO{
		Username: "newbie", Email: "newbie@example.com", Password: "newbie-pass", Role: domain.RoleUser,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	newbie := decode[dto.UserDTO](t, env.Data)

	w, _ = s.do(s.admin, http.MethodPost, "/admin/v1/users", admin, dto.CreateUserDTO{
		Username: "newbie", Email: "other@example.com", Password: "newbie-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "duplicate username")

	w, _ = s.do(s.admin, http.MethodPut, fmt.Sprintf("/admin/v1/users/%d/password", newbie.ID), admin, dto.ResetPasswordDTO{NewPassword: "reset-pass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.login("newbie", "reset-pass")

	w, env = s.do(s.admin, http.MethodGet, "/admin/v1/users/role/Manager", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.UserDTO](t, env.Data), 1)

	w, _ = s.do(s.admin, http.MethodGet, "/admin/v1/dashboard/stats", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(s.admin, http.MethodDelete, fmt.Sprintf("/admin/v1/users/%d", newbie.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(s.api, http.MethodPost, "/api/v1/auth/login", "", dto.LoginDTO{Username: "newbie", Password: "reset-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "deleted users cannot log in")
}

func TestBodyLimitOverHTTP(t *testing.T) {
	s := newServer(t, config.HTTP{MaxBodyBytes: 64})
	token := s.login("user", "user-pass")

	w, env := s.do(s.api, http.MethodPost, "/api/v1/customers", token, map[string]any{
		"email": "a@acme.com",
		"notes": strings.Repeat("x", 200),
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
	assert.Equal(t, 413, env.Code)
}
