package service_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/core/cache"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/internal/repo"
	"go-gin-gorm-crm/internal/service"
	"go-gin-gorm-crm/internal/testutil"
)

var t0 = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

type env struct {
	db    *gorm.DB
	clock *testutil.Clock
	jwt   *auth.JWTer
	cache *cache.Cache
	t     *testing.T
}

func newEnv(t *testing.T) *env {
	t.Helper()
	clock := testutil.NewClock(t0)
	return &env{
		db:    testutil.NewDB(t),
		clock: clock,
		jwt:   &auth.JWTer{Secret: []byte("test-secret"), Issuer: "crm-test", TTL: time.Hour, Now: clock.Now},
		t:     t,
	}
}

// svc returns a service set on a fresh unit of work, like one request.
func (e *env) svc() *service.Services {
	return service.New(repo.NewUnitOfWork(e.db, repo.WithClock(e.clock.Now)), service.Deps{
		JWT:      e.jwt,
		Cache:    e.cache,
		Log:      zaptest.NewLogger(e.t),
		StatsTTL: time.Minute,
		Now:      e.clock.Now,
	})
}

func (e *env) createCustomer(name, email string) *dto.CustomerDTO {
	e.t.Helper()
	c, err := e.svc().Customers.Create(context.Background(), dto.CreateCustomerDTO{CompanyName: name, Email: email}, "alice")
	require.NoError(e.t, err)
	return c
}

// TestCustomerCreateThenList creates one customer and reads it back through
// the paged list.
func TestCustomerCreateThenList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created := e.createCustomer("Acme", "a@acme.com")
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.CustomerCompany, created.Type, "a company name implies a company customer")
	assert.Equal(t, domain.CustomerActive, created.Status)
	assert.Equal(t, "alice", created.CreatedBy)
	assert.True(t, created.CreatedAt.Equal(t0))
	assert.Nil(t, created.UpdatedAt, "UpdatedAt stays empty until the first mutation")
	assert.Nil(t, created.UpdatedBy)

	page, err := e.svc().Customers.GetAll(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Acme", page.Data[0].CompanyName)
	assert.Equal(t, "alice", page.Data[0].CreatedBy)
}

// TestPagingArithmetic checks the in-memory page envelope.
func TestPagingArithmetic(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	for i := 1; i <= 25; i++ {
		e.createCustomer(fmt.Sprintf("Company %02d", i), fmt.Sprintf("c%d@example.com", i))
	}

	tests := []struct {
		name                 string
		page, size           int
		wantPage, wantSize   int
		wantLen, wantPages   int
		wantFirstCompanyName string
	}{
		{"middle page", 2, 10, 2, 10, 10, 3, "Company 11"},
		{"last partial page", 3, 10, 3, 10, 5, 3, "Company 21"},
		{"past the end", 4, 10, 4, 10, 0, 3, ""},
		{"defaults for non-positive input", 0, -1, 1, 10, 10, 3, "Company 01"},
		{"one page holds everything", 1, 100, 1, 100, 25, 1, "Company 01"},
		{"exact multiple", 1, 5, 1, 5, 5, 5, "Company 01"},
		{"page number overflow", math.MaxInt, 10, math.MaxInt, 10, 0, 3, ""},
		{"huge page size", 1, math.MaxInt, 1, math.MaxInt, 25, 1, "Company 01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.svc().Customers.GetAll(ctx, tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, 25, got.TotalCount)
			assert.Equal(t, tt.wantPage, got.PageNumber)
			assert.Equal(t, tt.wantSize, got.PageSize)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			require.NotNil(t, got.Data, "data is never null")
			require.Len(t, got.Data, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirstCompanyName, got.Data[0].CompanyName)
			}
		})
	}
}

// TestCustomerUpdate covers audit stamping and the not-found policy.
func TestCustomerUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.createCustomer("Acme", "a@acme.com")

	_, err := e.svc().Customers.Update(ctx, 999, dto.UpdateCustomerDTO{Email: "x@example.com", Type: domain.CustomerCompany, Status: domain.CustomerActive}, "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	e.clock.Advance(time.Hour)
	updated, err := e.svc().Customers.Update(ctx, c.ID, dto.UpdateCustomerDTO{
		CompanyName: "Acme Corp",
		Email:       "info@acme.com",
		Type:        domain.CustomerCompany,
		Status:      domain.CustomerSuspended,
	}, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "bob", *updated.UpdatedBy)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(time.Hour)))

	got, err := e.svc().Customers.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "info@acme.com", got.Email)
	assert.Equal(t, domain.CustomerSuspended, got.Status)
	assert.Equal(t, "alice", got.CreatedBy, "creation audit survives updates")
	assert.True(t, got.CreatedAt.Equal(t0))

	suspended, err := e.svc().Customers.GetByStatus(ctx, domain.CustomerSuspended)
	require.NoError(t, err)
	assert.Len(t, suspended, 1)
}

// TestCustomerDeleteIsSoft verifies the row is flagged, not removed, and that
// it disappears from every service read.
func TestCustomerDeleteIsSoft(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.createCustomer("Acme", "a@acme.com")

	require.NoError(t, e.svc().Customers.Delete(ctx, c.ID))

	_, err := e.svc().Customers.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page, err := e.svc().Customers.GetAll(ctx, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)

	found, err := e.svc().Customers.Search(ctx, "Acme", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, found.TotalCount)

	var deleted bool
	require.NoError(t, e.db.Raw("SELECT is_deleted FROM customers WHERE id = ?", c.ID).Scan(&deleted).Error)
	assert.True(t, deleted, "the raw row is kept with is_deleted set")

	assert.ErrorIs(t, e.svc().Customers.Delete(ctx, c.ID), domain.ErrNotFound, "deleting again reports not found")
}
