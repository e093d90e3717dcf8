package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-gorm-crm/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// TestCustomerAndContactFilters exercises the customer and contact lookups.
func TestCustomerAndContactFilters(t *testing.T) {
	_, uow, _ := setup(t)
	ctx := context.Background()

	acme := newCustomer("Acme", "a@acme.com")
	jane := newCustomer("", "jane@example.com")
	jane.FirstName, jane.LastName = "Jane", "Doe"
	jane.Type = domain.CustomerIndividual
	jane.Status = domain.CustomerInactive
	uow.Customers().Add(acme)
	uow.Customers().Add(jane)
	require.NoError(t, uow.SaveChanges(ctx))

	inactive, err := uow.Customers().GetByStatus(ctx, domain.CustomerInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, jane.ID, inactive[0].ID)

	companies, err := uow.Customers().GetByType(ctx, domain.CustomerCompany)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].CompanyName)

	got, err := uow.Customers().GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, jane.ID, got.ID)

	found, err := uow.Customers().Search(ctx, "Doe")
	require.NoError(t, err)
	require.Len(t, found, 1, "search matches last name")

	for i, name := range []string{"Ann", "Bob"} {
		c := &domain.Contact{
			CustomerID: acme.ID,
			FirstName:  name,
			LastName:   "Smith",
			JobTitle:   "Engineer",
			Role:       domain.ContactTechnical,
			IsPrimary:  i == 1,
		}
		c.Created("tester", t0)
		uow.Contacts().Add(c)
	}
	require.NoError(t, uow.SaveChanges(ctx))

	contacts, err := uow.Contacts().GetByCustomer(ctx, acme.ID)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)

	primary, err := uow.Contacts().GetPrimaryByCustomer(ctx, acme.ID)
	require.NoError(t, err)
	require.NotNil(t, primary)
	assert.Equal(t, "Bob", primary.FirstName)

	none, err := uow.Contacts().GetPrimaryByCustomer(ctx, jane.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	engineers, err := uow.Contacts().Search(ctx, "Engineer")
	require.NoError(t, err)
	assert.Len(t, engineers, 2, "search matches job title")
}

// TestLeadAndOpportunityFilters exercises lead and opportunity lookups.
func TestLeadAndOpportunityFilters(t *testing.T) {
	_, uow, _ := setup(t)
	ctx := context.Background()

	l := &domain.Lead{
		FirstName:      "Lee",
		LastName:       "Park",
		CompanyName:    "Initech",
		Email:          "lee@initech.com",
		Status:         domain.LeadQualified,
		Source:         domain.SourceReferral,
		Priority:       domain.PriorityHigh,
		EstimatedValue: decimal.RequireFromString("1200.50"),
		AssignedUserID: ptr(uint(7)),
	}
	l.Created("tester", t0)
	uow.Leads().Add(l)

	o := &domain.Opportunity{
		Name:        "Initech renewal",
		Description: "annual licence",
		CustomerID:  ptr(uint(3)),
		Stage:       domain.StageProposal,
		Status:      domain.OpportunityOpen,
		Amount:      decimal.NewFromInt(5000),
		Probability: decimal.NewFromInt(40),
	}
	o.Created("tester", t0)
	uow.Opportunities().Add(o)
	require.NoError(t, uow.SaveChanges(ctx))

	byStatus, err := uow.Leads().GetByStatus(ctx, domain.LeadQualified)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.True(t, byStatus[0].EstimatedValue.Equal(decimal.RequireFromString("1200.5")))

	mine, err := uow.Leads().GetByAssignedUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	byEmail, err := uow.Leads().GetByEmail(ctx, "lee@initech.com")
	require.NoError(t, err)
	assert.NotNil(t, byEmail)

	leads, err := uow.Leads().Search(ctx, "Initech")
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	byStage, err := uow.Opportunities().GetByStage(ctx, domain.StageProposal)
	require.NoError(t, err)
	assert.Len(t, byStage, 1)

	open, err := uow.Opportunities().GetByStatus(ctx, domain.OpportunityOpen)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	ofCustomer, err := uow.Opportunities().GetByCustomer(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, ofCustomer, 1)

	unassigned, err := uow.Opportunities().GetByAssignedUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, unassigned)

	opps, err := uow.Opportunities().Search(ctx, "licence")
	require.NoError(t, err)
	assert.Len(t, opps, 1, "search matches description")
}

// TestGetOverdue checks that only open work items past their due date count.
func TestGetOverdue(t *testing.T) {
	_, uow, _ := setup(t)
	ctx := context.Background()
	now := t0.Add(48 * time.Hour)

	items := []struct {
		title  string
		due    *time.Time
		status domain.WorkItemStatus
	}{
		{"late call", ptr(now.Add(-time.Hour)), domain.WorkItemNotStarted},
		{"late but done", ptr(now.Add(-time.Hour)), domain.WorkItemCompleted},
		{"late but cancelled", ptr(now.Add(-time.Hour)), domain.WorkItemCancelled},
		{"late and deferred", ptr(now.Add(-24 * time.Hour)), domain.WorkItemDeferred},
		{"due tomorrow", ptr(now.Add(24 * time.Hour)), domain.WorkItemInProgress},
		{"no due date", nil, domain.WorkItemNotStarted},
	}
	for _, it := range items {
		w := &domain.WorkItem{
			Title:          it.title,
			Type:           domain.WorkItemCall,
			Priority:       domain.PriorityMedium,
			Status:         it.status,
			DueDate:        it.due,
			AssignedUserID: 1,
		}
		w.Created("tester", t0)
		uow.WorkItems().Add(w)
	}
	require.NoError(t, uow.SaveChanges(ctx))

	overdue, err := uow.WorkItems().GetOverdue(ctx, now)
	require.NoError(t, err)
	titles := make([]string, 0, len(overdue))
	for _, w := range overdue {
		titles = append(titles, w.Title)
	}
	assert.ElementsMatch(t, []string{"late call", "late and deferred"}, titles)

	mine, err := uow.WorkItems().GetByAssignedUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, len(items))

	done, err := uow.WorkItems().GetByStatus(ctx, domain.WorkItemCompleted)
	require.NoError(t, err)
	assert.Len(t, done, 1)

	calls, err := uow.WorkItems().Search(ctx, "late")
	require.NoError(t, err)
	assert.Len(t, calls, 4)
}

// TestProductAndUserFilters exercises catalogue and user lookups.
func TestProductAndUserFilters(t *testing.T) {
	_, uow, _ := setup(t)
	ctx := context.Background()

	products := []*domain.Product{
		{Name: "Widget", SKU: "WID-1", Category: "Hardware", Price: decimal.RequireFromString("99.99"), IsActive: true},
		{Name: "Gadget", SKU: "GAD-1", Category: "Hardware", Price: decimal.NewFromInt(10), IsActive: false},
		{Name: "Support plan", SKU: "SUP-1", Category: "Services", Price: decimal.NewFromInt(500), IsActive: true},
	}
	for _, p := range products {
		p.Created("tester", t0)
		uow.Products().Add(p)
	}
	u := &domain.User{Username: "mgr", Email: "mgr@example.com", Role: domain.RoleManager, Status: domain.UserActive}
	u.Created("tester", t0)
	uow.Users().Add(u)
	require.NoError(t, uow.SaveChanges(ctx))

	hw, err := uow.Products().GetByCategory(ctx, "Hardware")
	require.NoError(t, err)
	assert.Len(t, hw, 2)

	active, err := uow.Products().GetActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2, "inactive products are excluded")

	bySKU, err := uow.Products().GetBySKU(ctx, "GAD-1")
	require.NoError(t, err)
	require.NotNil(t, bySKU)
	assert.False(t, bySKU.IsActive, "an explicit false must round-trip")

	wid, err := uow.Products().Search(ctx, "WID")
	require.NoError(t, err)
	require.Len(t, wid, 1, "search matches SKU")
	assert.True(t, wid[0].Price.Equal(decimal.RequireFromString("99.99")))

	byName, err := uow.Users().GetByUsername(ctx, "mgr")
	require.NoError(t, err)
	require.NotNil(t, byName)

	byEmail, err := uow.Users().GetByEmail(ctx, "mgr@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	managers, err := uow.Users().GetByRole(ctx, domain.RoleManager)
	require.NoError(t, err)
	assert.Len(t, managers, 1)

	found, err := uow.Users().Search(ctx, "mgr@")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

// TestSearchMatchesWildcardsLiterally checks that LIKE metacharacters in a
// term only match themselves.
func TestSearchMatchesWildcardsLiterally(t *testing.T) {
	_, uow, _ := setup(t)
	ctx := context.Background()

	for _, p := range []*domain.Product{
		{Name: "Widget A", SKU: "WID-001", Category: "Hardware", Price: decimal.NewFromInt(5), IsActive: true},
		{Name: "Gadget B", SKU: "GAD-001", Category: "Hardware", Price: decimal.NewFromInt(7), IsActive: true},
		{Name: "Sale! 50% off", SKU: "PROMO_1", Category: "Promotions", Price: decimal.NewFromInt(1), IsActive: true},
	} {
		p.Created("tester", t0)
		uow.Products().Add(p)
	}
	require.NoError(t, uow.SaveChanges(ctx))

	tests := []struct {
		term string
		want []string
	}{
		{"%", []string{"PROMO_1"}},
		{"_", []string{"PROMO_1"}},
		{"G_D", nil},
		{"O_1", []string{"PROMO_1"}},
		{"50%", []string{"PROMO_1"}},
		{"!", []string{"PROMO_1"}},
		{"!%", nil},
		{"-001", []string{"WID-001", "GAD-001"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := uow.Products().Search(ctx, tt.term)
			require.NoError(t, err)
			var skus []string
			for _, p := range found {
				skus = append(skus, p.SKU)
			}
			assert.Equal(t, tt.want, skus)
		})
	}
}
