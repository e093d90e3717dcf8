package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"go-gin-gorm-crm/internal/domain"
)

type OpportunityDTO struct {
	ID                uint                     `json:"id"`
	Name              string                   `json:"name"`
	Description       string                   `json:"description"`
	CustomerID        *uint                    `json:"customerId"`
	AssignedUserID    *uint                    `json:"assignedUserId"`
	Stage             domain.OpportunityStage  `json:"stage"`
	Status            domain.OpportunityStatus `json:"status"`
	Amount            decimal.Decimal          `json:"amount"`
	Probability       decimal.Decimal          `json:"probability"`
	ExpectedCloseDate *time.Time               `json:"expectedCloseDate"`
	ActualCloseDate   *time.Time               `json:"actualCloseDate"`
	Notes             string                   `json:"notes"`
	AuditDTO
}

type CreateOpportunityDTO struct {
	Name              string                   `json:"name" binding:"required,max=200"`
	Description       string                   `json:"description" binding:"max=2000"`
	CustomerID        *uint                    `json:"customerId"`
	AssignedUserID    *uint                    `json:"assignedUserId"`
	Stage             domain.OpportunityStage  `json:"stage" binding:"omitempty,oneof=Prospecting Qualification NeedsAnalysis Proposal Negotiation ClosedWon ClosedLost"`
	Status            domain.OpportunityStatus `json:"status" binding:"omitempty,oneof=Open Won Lost Cancelled"`
	Amount            decimal.Decimal          `json:"amount"`
	Probability       decimal.Decimal          `json:"probability"`
	ExpectedCloseDate *time.Time               `json:"expectedCloseDate"`
	Notes             string                   `json:"notes" binding:"max=2000"`
}

// UpdateOpportunityDTO overwrites every mutable field. A nil CustomerID
// unassigns the opportunity from its customer.
type UpdateOpportunityDTO struct {
	ID                uint                     `json:"id"`
	Name              string                   `json:"name" binding:"required,max=200"`
	Description       string                   `json:"description" binding:"max=2000"`
	CustomerID        *uint                    `json:"customerId"`
	AssignedUserID    *uint                    `json:"assignedUserId"`
	Stage             domain.OpportunityStage  `json:"stage" binding:"required,oneof=Prospecting Qualification NeedsAnalysis Proposal Negotiation ClosedWon ClosedLost"`
	Status            domain.OpportunityStatus `json:"status" binding:"required,oneof=Open Won Lost Cancelled"`
	Amount            decimal.Decimal          `json:"amount"`
	Probability       decimal.Decimal          `json:"probability"`
	ExpectedCloseDate *time.Time               `json:"expectedCloseDate"`
	ActualCloseDate   *time.Time               `json:"actualCloseDate"`
	Notes             string                   `json:"notes" binding:"max=2000"`
}

type UpdateStageDTO struct {
	Stage domain.OpportunityStage `json:"stage" binding:"required,oneof=Prospecting Qualification NeedsAnalysis Proposal Negotiation ClosedWon ClosedLost"`
}

type DashboardStatsDTO = domain.DashboardStats

type StageSummaryDTO = domain.StageSummary
