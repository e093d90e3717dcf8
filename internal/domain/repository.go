package domain

import (
	"context"
	"time"
)

// Repository is the data access contract shared by every entity type.
// Reads never return soft-deleted rows; a missing id yields (nil, nil).
// Add, Update and Delete are queued and only reach the store on SaveChanges.
type Repository[T any] interface {
	GetByID(ctx context.Context, id uint) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	GetPaged(ctx context.Context, pageNumber, pageSize int) ([]T, error)
	Add(entity *T)
	Update(entity *T)
	Delete(id uint)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	Repository[Customer]
	GetByStatus(ctx context.Context, status CustomerStatus) ([]Customer, error)
	GetByType(ctx context.Context, t CustomerType) ([]Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	Search(ctx context.Context, term string) ([]Customer, error)
}

type ContactRepository interface {
	Repository[Contact]
	GetByCustomer(ctx context.Context, customerID uint) ([]Contact, error)
	GetPrimaryByCustomer(ctx context.Context, customerID uint) (*Contact, error)
	GetByEmail(ctx context.Context, email string) (*Contact, error)
	Search(ctx context.Context, term string) ([]Contact, error)
}

type LeadRepository interface {
	Repository[Lead]
	GetByStatus(ctx context.Context, status LeadStatus) ([]Lead, error)
	GetByAssignedUser(ctx context.Context, userID uint) ([]Lead, error)
	GetByEmail(ctx context.Context, email string) (*Lead, error)
	Search(ctx context.Context, term string) ([]Lead, error)
}

type OpportunityRepository interface {
	Repository[Opportunity]
	GetByStage(ctx context.Context, stage OpportunityStage) ([]Opportunity, error)
	GetByStatus(ctx context.Context, status OpportunityStatus) ([]Opportunity, error)
	GetByCustomer(ctx context.Context, customerID uint) ([]Opportunity, error)
	GetByAssignedUser(ctx context.Context, userID uint) ([]Opportunity, error)
	Search(ctx context.Context, term string) ([]Opportunity, error)
}

type WorkItemRepository interface {
	Repository[WorkItem]
	GetByAssignedUser(ctx context.Context, userID uint) ([]WorkItem, error)
	GetByStatus(ctx context.Context, status WorkItemStatus) ([]WorkItem, error)
	GetByCustomer(ctx context.Context, customerID uint) ([]WorkItem, error)
	GetOverdue(ctx context.Context, now time.Time) ([]WorkItem, error)
	Search(ctx context.Context, term string) ([]WorkItem, error)
}

type ProductRepository interface {
	Repository[Product]
	GetByCategory(ctx context.Context, category string) ([]Product, error)
	GetActive(ctx context.Context) ([]Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	Search(ctx context.Context, term string) ([]Product, error)
}

type UserRepository interface {
	Repository[User]
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByRole(ctx context.Context, role UserRole) ([]User, error)
	Search(ctx context.Context, term string) ([]User, error)
}

type StatsRepository interface {
	Dashboard(ctx context.Context, now time.Time) (*DashboardStats, error)
	Pipeline(ctx context.Context) ([]StageSummary, error)
}

// UnitOfWork bundles one repository per entity type behind a single commit.
// It is request scoped and must not be shared between goroutines.
type UnitOfWork interface {
	Customers() CustomerRepository
	Contacts() ContactRepository
	Leads() LeadRepository
	Opportunities() OpportunityRepository
	WorkItems() WorkItemRepository
	Products() ProductRepository
	Users() UserRepository
	Stats() StatsRepository

	SaveChanges(ctx context.Context) error
	BeginTransaction(ctx context.Context) error
	Commit() error
	Rollback() error
}
