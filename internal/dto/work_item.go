package dto

import (
	"time"

	"go-gin-gorm-crm/internal/domain"
)

type WorkItemDTO struct {
	ID             uint                  `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Type           domain.WorkItemType   `json:"type"`
	Priority       domain.Priority       `json:"priority"`
	Status         domain.WorkItemStatus `json:"status"`
	DueDate        *time.Time            `json:"dueDate"`
	CompletedDate  *time.Time            `json:"completedDate"`
	AssignedUserID uint                  `json:"assignedUserId"`
	CustomerID     *uint                 `json:"customerId"`
	LeadID         *uint                 `json:"leadId"`
	OpportunityID  *uint                 `json:"opportunityId"`
	AuditDTO
}

type CreateWorkItemDTO struct {
	Title          string                `json:"title" binding:"required,max=200"`
	Description    string                `json:"description" binding:"max=2000"`
	Type           domain.WorkItemType   `json:"type" binding:"omitempty,oneof=Call Email Meeting FollowUp Demo Other"`
	Priority       domain.Priority       `json:"priority" binding:"omitempty,oneof=Low Medium High Urgent"`
	Status         domain.WorkItemStatus `json:"status" binding:"omitempty,oneof=NotStarted InProgress Completed Cancelled Deferred"`
	DueDate        *time.Time            `json:"dueDate"`
	AssignedUserID uint                  `json:"assignedUserId" binding:"required"`
	CustomerID     *uint                 `json:"customerId"`
	LeadID         *uint                 `json:"leadId"`
	OpportunityID  *uint                 `json:"opportunityId"`
}

type UpdateWorkItemDTO struct {
	ID             uint                  `json:"id"`
	Title          string                `json:"title" binding:"required,max=200"`
	Description    string                `json:"description" binding:"max=2000"`
	Type           domain.WorkItemType   `json:"type" binding:"required,oneof=Call Email Meeting FollowUp Demo Other"`
	Priority       domain.Priority       `json:"priority" binding:"required,oneof=Low Medium High Urgent"`
	Status         domain.WorkItemStatus `json:"status" binding:"required,oneof=NotStarted InProgress Completed Cancelled Deferred"`
	DueDate        *time.Time            `json:"dueDate"`
	CompletedDate  *time.Time            `json:"completedDate"`
	AssignedUserID uint                  `json:"assignedUserId" binding:"required"`
	CustomerID     *uint                 `json:"customerId"`
	LeadID         *uint                 `json:"leadId"`
	OpportunityID  *uint                 `json:"opportunityId"`
}
