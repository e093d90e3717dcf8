package domain

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate snapshot shown on the dashboard.
type DashboardStats struct {
	TotalCustomers    int64           `json:"totalCustomers"`
	ActiveCustomers   int64           `json:"activeCustomers"`
	TotalLeads        int64           `json:"totalLeads"`
	NewLeads          int64           `json:"newLeads"`
	OpenOpportunities int64           `json:"openOpportunities"`
	PipelineValue     decimal.Decimal `json:"pipelineValue"`
	WonValue          decimal.Decimal `json:"wonValue"`
	PendingWorkItems  int64           `json:"pendingWorkItems"`
	OverdueWorkItems  int64           `json:"overdueWorkItems"`
	ActiveProducts    int64           `json:"activeProducts"`
}

// StageSummary is one row of the sales pipeline.
type StageSummary struct {
	Stage  OpportunityStage `json:"stage"`
	Count  int64            `json:"count"`
	Amount decimal.Decimal  `json:"amount"`
}
