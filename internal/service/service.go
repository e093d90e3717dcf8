package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/core/cache"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

// Deps are the process-wide collaborators shared by every request.
type Deps struct {
	JWT      *auth.JWTer
	Cache    *cache.Cache
	Log      *zap.Logger
	StatsTTL time.Duration
	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

// Services is the set of application services bound to one unit of work.
// Build one per request.
type Services struct {
	Customers     *CustomerService
	Contacts      *ContactService
	Leads         *LeadService
	Opportunities *OpportunityService
	WorkItems     *WorkItemService
	Products      *ProductService
	Users         *UserService
	Auth          *AuthService
	Dashboard     *DashboardService
}

func New(uow domain.UnitOfWork, d Deps) *Services {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	if d.StatsTTL <= 0 {
		d.StatsTTL = time.Minute
	}
	b := func(name string) base {
		return base{uow: uow, log: d.Log.Named(name), now: d.Now, cache: d.Cache}
	}
	return &Services{
		Customers:     &CustomerService{b("customer")},
		Contacts:      &ContactService{b("contact")},
		Leads:         &LeadService{b("lead")},
		Opportunities: &OpportunityService{b("opportunity")},
		WorkItems:     &WorkItemService{b("workitem")},
		Products:      &ProductService{b("product")},
		Users:         &UserService{b("user")},
		Auth:          &AuthService{base: b("auth"), jwt: d.JWT},
		Dashboard:     &DashboardService{base: b("dashboard"), ttl: d.StatsTTL},
	}
}

type base struct {
	uow   domain.UnitOfWork
	log   *zap.Logger
	now   func() time.Time
	cache *cache.Cache
}

// save commits the unit of work and drops the cached dashboard figures.
func (b *base) save(ctx context.Context, what string) error {
	if err := b.flush(ctx, what); err != nil {
		return err
	}
	b.invalidateDashboard(ctx)
	return nil
}

// flush applies queued writes without touching the cache. Inside an explicit
// transaction the caller invalidates after Commit.
func (b *base) flush(ctx context.Context, what string) error {
	if err := b.uow.SaveChanges(ctx); err != nil {
		b.log.Error("save changes", zap.String("op", what), zap.Error(err))
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (b *base) invalidateDashboard(ctx context.Context) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Invalidate(ctx, statsKey, pipelineKey); err != nil {
		b.log.Warn("invalidate dashboard cache", zap.Error(err))
	}
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// get loads a live entity or fails with ErrNotFound.
func get[T any](ctx context.Context, r domain.Repository[T], entity string, id uint) (*T, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", entity, id, err)
	}
	if e == nil {
		return nil, notFound(entity, id)
	}
	return e, nil
}

// remove soft-deletes a live entity or fails with ErrNotFound.
func remove[T any](ctx context.Context, b *base, r domain.Repository[T], entity string, id uint) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", entity, id, err)
	}
	if !ok {
		return notFound(entity, id)
	}
	r.Delete(id)
	return b.save(ctx, "delete "+entity)
}

// paginate slices an already fetched result set and maps the page.
func paginate[E, D any](items []E, pageNumber, pageSize int, conv func(*E) D) dto.PagedResult[D] {
	pageNumber, pageSize = domain.NormalizePage(pageNumber, pageSize)
	total := len(items)
	start, end := domain.PageWindow(pageNumber, pageSize, total)
	out := make([]D, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, conv(&items[i]))
	}
	return dto.NewPagedResult(out, total, pageNumber, pageSize)
}

func mapAll[E, D any](items []E, conv func(*E) D) []D {
	out := make([]D, 0, len(items))
	for i := range items {
		out = append(out, conv(&items[i]))
	}
	return out
}
