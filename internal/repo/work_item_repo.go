package repo

import (
	"context"
	"time"

	"go-gin-gorm-crm/internal/domain"
)

// closedWorkItem lists the statuses that no longer count as pending.
var closedWorkItem = []domain.WorkItemStatus{domain.WorkItemCompleted, domain.WorkItemCancelled}

type WorkItemRepo struct{ Repository[domain.WorkItem] }

func (r *WorkItemRepo) GetByAssignedUser(ctx context.Context, userID uint) ([]domain.WorkItem, error) {
	return r.find(ctx, "assigned_user_id = ?", userID)
}

func (r *WorkItemRepo) GetByStatus(ctx context.Context, status domain.WorkItemStatus) ([]domain.WorkItem, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *WorkItemRepo) GetByCustomer(ctx context.Context, customerID uint) ([]domain.WorkItem, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *WorkItemRepo) GetOverdue(ctx context.Context, now time.Time) ([]domain.WorkItem, error) {
	return r.find(ctx, "due_date IS NOT NULL AND due_date < ? AND status NOT IN ?", now, closedWorkItem)
}

func (r *WorkItemRepo) Search(ctx context.Context, term string) ([]domain.WorkItem, error) {
	return r.search(ctx, term, "title", "description")
}
