package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/domain"
)

// UnitOfWork is the request-scoped aggregate of repositories. Writes made
// through any repository stay queued until SaveChanges.
type UnitOfWork struct {
	s *session

	customers     *CustomerRepo
	contacts      *ContactRepo
	leads         *LeadRepo
	opportunities *OpportunityRepo
	workItems     *WorkItemRepo
	products      *ProductRepo
	users         *UserRepo
	stats         *StatsRepo
}

type Option func(*session)

// WithClock overrides the clock used to stamp soft deletes.
func WithClock(now func() time.Time) Option {
	return func(s *session) { s.now = now }
}

func NewUnitOfWork(db *gorm.DB, opts ...Option) *UnitOfWork {
	s := &session{db: db, now: func() time.Time { return time.Now().UTC() }}
	for _, o := range opts {
		o(s)
	}
	return &UnitOfWork{
		s:             s,
		customers:     &CustomerRepo{newRepository[domain.Customer](s)},
		contacts:      &ContactRepo{newRepository[domain.Contact](s)},
		leads:         &LeadRepo{newRepository[domain.Lead](s)},
		opportunities: &OpportunityRepo{newRepository[domain.Opportunity](s)},
		workItems:     &WorkItemRepo{newRepository[domain.WorkItem](s)},
		products:      &ProductRepo{newRepository[domain.Product](s)},
		users:         &UserRepo{newRepository[domain.User](s)},
		stats:         &StatsRepo{s: s},
	}
}

func (u *UnitOfWork) Customers() domain.CustomerRepository        { return u.customers }
func (u *UnitOfWork) Contacts() domain.ContactRepository          { return u.contacts }
func (u *UnitOfWork) Leads() domain.LeadRepository                { return u.leads }
func (u *UnitOfWork) Opportunities() domain.OpportunityRepository { return u.opportunities }
func (u *UnitOfWork) WorkItems() domain.WorkItemRepository        { return u.workItems }
func (u *UnitOfWork) Products() domain.ProductRepository          { return u.products }
func (u *UnitOfWork) Users() domain.UserRepository                { return u.users }
func (u *UnitOfWork) Stats() domain.StatsRepository               { return u.stats }

// Pending reports the number of queued writes.
func (u *UnitOfWork) Pending() int { return len(u.s.pending) }

// SaveChanges applies every queued write atomically. On failure none of them
// take effect and the queue is discarded.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	return u.s.flush(ctx)
}

// BeginTransaction opens an explicit transaction; reads and saves run inside
// it until Commit or Rollback.
func (u *UnitOfWork) BeginTransaction(ctx context.Context) error {
	if u.s.tx != nil {
		return domain.ErrTransactionActive
	}
	tx := u.s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.s.tx = tx
	return nil
}

func (u *UnitOfWork) Commit() error {
	if u.s.tx == nil {
		return domain.ErrNoTransaction
	}
	err := u.s.tx.Commit().Error
	u.s.tx = nil
	return err
}

// Rollback discards the transaction and any writes still queued.
func (u *UnitOfWork) Rollback() error {
	if u.s.tx == nil {
		return domain.ErrNoTransaction
	}
	err := u.s.tx.Rollback().Error
	u.s.tx = nil
	u.s.pending = nil
	return err
}

var _ domain.UnitOfWork = (*UnitOfWork)(nil)
