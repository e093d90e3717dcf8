package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OpportunityStage string

const (
	StageProspecting   OpportunityStage = "Prospecting"
	StageQualification OpportunityStage = "Qualification"
	StageNeedsAnalysis OpportunityStage = "NeedsAnalysis"
	StageProposal      OpportunityStage = "Proposal"
	StageNegotiation   OpportunityStage = "Negotiation"
	StageClosedWon     OpportunityStage = "ClosedWon"
	StageClosedLost    OpportunityStage = "ClosedLost"
)

type OpportunityStatus string

const (
	OpportunityOpen      OpportunityStatus = "Open"
	OpportunityWon       OpportunityStatus = "Won"
	OpportunityLost      OpportunityStatus = "Lost"
	OpportunityCancelled OpportunityStatus = "Cancelled"
)

// Opportunity stage and status are independent: any stage may be set in any
// order and neither is checked against the other.
type Opportunity struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	Name              string            `gorm:"size:200;not null" json:"name"`
	Description       string            `gorm:"size:2000" json:"description"`
	CustomerID        *uint             `gorm:"index" json:"customerId"`
	AssignedUserID    *uint             `gorm:"index" json:"assignedUserId"`
	Stage             OpportunityStage  `gorm:"size:20;not null;index" json:"stage"`
	Status            OpportunityStatus `gorm:"size:20;not null;index" json:"status"`
	Amount            decimal.Decimal   `gorm:"type:decimal(18,2);not null" json:"amount"`
	Probability       decimal.Decimal   `gorm:"type:decimal(5,2);not null" json:"probability"`
	ExpectedCloseDate *time.Time        `json:"expectedCloseDate"`
	ActualCloseDate   *time.Time        `json:"actualCloseDate"`
	Notes             string            `gorm:"size:2000" json:"notes"`
	Audit
}

// PipelineStages lists the stages in pipeline order.
var PipelineStages = []OpportunityStage{
	StageProspecting,
	StageQualification,
	StageNeedsAnalysis,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}
