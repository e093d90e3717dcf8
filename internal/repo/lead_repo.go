package repo

import (
	"context"

	"go-gin-gorm-crm/internal/domain"
)

type LeadRepo struct{ Repository[domain.Lead] }

func (r *LeadRepo) GetByStatus(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *LeadRepo) GetByAssignedUser(ctx context.Context, userID uint) ([]domain.Lead, error) {
	return r.find(ctx, "assigned_user_id = ?", userID)
}

func (r *LeadRepo) GetByEmail(ctx context.Context, email string) (*domain.Lead, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *LeadRepo) Search(ctx context.Context, term string) ([]domain.Lead, error) {
	return r.search(ctx, term, "first_name", "last_name", "company_name", "email")
}

type OpportunityRepo struct{ Repository[domain.Opportunity] }

func (r *OpportunityRepo) GetByStage(ctx context.Context, stage domain.OpportunityStage) ([]domain.Opportunity, error) {
	return r.find(ctx, "stage = ?", stage)
}

func (r *OpportunityRepo) GetByStatus(ctx context.Context, status domain.OpportunityStatus) ([]domain.Opportunity, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *OpportunityRepo) GetByCustomer(ctx context.Context, customerID uint) ([]domain.Opportunity, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *OpportunityRepo) GetByAssignedUser(ctx context.Context, userID uint) ([]domain.Opportunity, error) {
	return r.find(ctx, "assigned_user_id = ?", userID)
}

func (r *OpportunityRepo) Search(ctx context.Context, term string) ([]domain.Opportunity, error) {
	return r.search(ctx, term, "name", "description")
}
