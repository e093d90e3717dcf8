package domain

import "time"

type WorkItemType string

const (
	WorkItemCall     WorkItemType = "Call"
	WorkItemEmail    WorkItemType = "Email"
	WorkItemMeeting  WorkItemType = "Meeting"
	WorkItemFollowUp WorkItemType = "FollowUp"
	WorkItemDemo     WorkItemType = "Demo"
	WorkItemOther    WorkItemType = "Other"
)

type WorkItemStatus string

const (
	WorkItemNotStarted WorkItemStatus = "NotStarted"
	WorkItemInProgress WorkItemStatus = "InProgress"
	WorkItemCompleted  WorkItemStatus = "Completed"
	WorkItemCancelled  WorkItemStatus = "Cancelled"
	WorkItemDeferred   WorkItemStatus = "Deferred"
)

// WorkItem is a task assigned to exactly one user and optionally related to a
// customer, lead or opportunity.
type WorkItem struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Description    string         `gorm:"size:2000" json:"description"`
	Type           WorkItemType   `gorm:"size:20;not null" json:"type"`
	Priority       Priority       `gorm:"size:20;not null" json:"priority"`
	Status         WorkItemStatus `gorm:"size:20;not null;index" json:"status"`
	DueDate        *time.Time     `gorm:"index" json:"dueDate"`
	CompletedDate  *time.Time     `json:"completedDate"`
	AssignedUserID uint           `gorm:"not null;index" json:"assignedUserId"`
	CustomerID     *uint          `gorm:"index" json:"customerId"`
	LeadID         *uint          `gorm:"index" json:"leadId"`
	OpportunityID  *uint          `gorm:"index" json:"opportunityId"`
	Audit
}
