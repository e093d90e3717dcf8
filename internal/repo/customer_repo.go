package repo

import (
	"context"

	"go-gin-gorm-crm/internal/domain"
)

type CustomerRepo struct{ Repository[domain.Customer] }

func (r *CustomerRepo) GetByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *CustomerRepo) GetByType(ctx context.Context, t domain.CustomerType) ([]domain.Customer, error) {
	return r.find(ctx, "type = ?", t)
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *CustomerRepo) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	return r.search(ctx, term, "company_name", "first_name", "last_name", "email")
}

type ContactRepo struct{ Repository[domain.Contact] }

func (r *ContactRepo) GetByCustomer(ctx context.Context, customerID uint) ([]domain.Contact, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *ContactRepo) GetPrimaryByCustomer(ctx context.Context, customerID uint) (*domain.Contact, error) {
	return r.first(ctx, "customer_id = ? AND is_primary = ?", customerID, true)
}

func (r *ContactRepo) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *ContactRepo) Search(ctx context.Context, term string) ([]domain.Contact, error) {
	return r.search(ctx, term, "first_name", "last_name", "email", "job_title")
}
