package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/domain"
)

// StatsRepo computes the dashboard aggregates straight in the store.
type StatsRepo struct{ s *session }

func (r *StatsRepo) live(ctx context.Context, model any) *gorm.DB {
	return r.s.conn().WithContext(ctx).Model(model).Where("is_deleted = ?", false)
}

type countQuery struct {
	dst   *int64
	model any
	where string
	args  []any
}

func (r *StatsRepo) Dashboard(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	var st domain.DashboardStats
	counts := []countQuery{
		{&st.TotalCustomers, &domain.Customer{}, "", nil},
		{&st.ActiveCustomers, &domain.Customer{}, "status = ?", []any{domain.CustomerActive}},
		{&st.TotalLeads, &domain.Lead{}, "", nil},
		{&st.NewLeads, &domain.Lead{}, "status = ?", []any{domain.LeadNew}},
		{&st.OpenOpportunities, &domain.Opportunity{}, "status = ?", []any{domain.OpportunityOpen}},
		{&st.PendingWorkItems, &domain.WorkItem{}, "status NOT IN ?", []any{closedWorkItem}},
		{&st.OverdueWorkItems, &domain.WorkItem{}, "due_date IS NOT NULL AND due_date < ? AND status NOT IN ?", []any{now, closedWorkItem}},
		{&st.ActiveProducts, &domain.Product{}, "is_active = ?", []any{true}},
	}
	for _, c := range counts {
		q := r.live(ctx, c.model)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count %T: %w", c.model, err)
		}
	}

	var err error
	if st.PipelineValue, err = r.sumAmount(ctx, "status = ?", domain.OpportunityOpen); err != nil {
		return nil, err
	}
	if st.WonValue, err = r.sumAmount(ctx, "status = ?", domain.OpportunityWon); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *StatsRepo) sumAmount(ctx context.Context, where string, args ...any) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.live(ctx, &domain.Opportunity{}).
		Where(where, args...).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum opportunity amount: %w", err)
	}
	return v.Round(2), nil
}

// Pipeline returns one row per stage in pipeline order, including empty stages.
func (r *StatsRepo) Pipeline(ctx context.Context) ([]domain.StageSummary, error) {
	var rows []domain.StageSummary
	err := r.live(ctx, &domain.Opportunity{}).
		Select("stage, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	byStage := make(map[domain.OpportunityStage]domain.StageSummary, len(rows))
	for _, row := range rows {
		row.Amount = row.Amount.Round(2)
		byStage[row.Stage] = row
	}
	out := make([]domain.StageSummary, 0, len(domain.PipelineStages))
	for _, stage := range domain.PipelineStages {
		row, ok := byStage[stage]
		if !ok {
			row = domain.StageSummary{Stage: stage, Amount: decimal.Zero}
		}
		out = append(out, row)
	}
	return out, nil
}
