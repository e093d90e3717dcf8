package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"go-gin-gorm-crm/internal/domain"
)

type LeadDTO struct {
	ID                  uint              `json:"id"`
	FirstName           string            `json:"firstName"`
	LastName            string            `json:"lastName"`
	CompanyName         string            `json:"companyName"`
	Email               string            `json:"email"`
	Phone               string            `json:"phone"`
	JobTitle            string            `json:"jobTitle"`
	Status              domain.LeadStatus `json:"status"`
	Source              domain.LeadSource `json:"source"`
	Priority            domain.Priority   `json:"priority"`
	EstimatedValue      decimal.Decimal   `json:"estimatedValue"`
	Notes               string            `json:"notes"`
	AssignedUserID      *uint             `json:"assignedUserId"`
	ConvertedCustomerID *uint             `json:"convertedCustomerId"`
	ConvertedDate       *time.Time        `json:"convertedDate"`
	AuditDTO
}

type CreateLeadDTO struct {
	FirstName      string            `json:"firstName" binding:"required,max=100"`
	LastName       string            `json:"lastName" binding:"required,max=100"`
	CompanyName    string            `json:"companyName" binding:"max=200"`
	Email          string            `json:"email" binding:"omitempty,email,max=255"`
	Phone          string            `json:"phone" binding:"max=50"`
	JobTitle       string            `json:"jobTitle" binding:"max=100"`
	Status         domain.LeadStatus `json:"status" binding:"omitempty,oneof=New Contacted Qualified Unqualified Converted Lost"`
	Source         domain.LeadSource `json:"source" binding:"omitempty,oneof=Website Referral SocialMedia Email Phone Event Advertisement Other"`
	Priority       domain.Priority   `json:"priority" binding:"omitempty,oneof=Low Medium High Urgent"`
	EstimatedValue decimal.Decimal   `json:"estimatedValue"`
	Notes          string            `json:"notes" binding:"max=2000"`
	AssignedUserID *uint             `json:"assignedUserId"`
}

type UpdateLeadDTO struct {
	ID             uint              `json:"id"`
	FirstName      string            `json:"firstName" binding:"required,max=100"`
	LastName       string            `json:"lastName" binding:"required,max=100"`
	CompanyName    string            `json:"companyName" binding:"max=200"`
	Email          string            `json:"email" binding:"omitempty,email,max=255"`
	Phone          string            `json:"phone" binding:"max=50"`
	JobTitle       string            `json:"jobTitle" binding:"max=100"`
	Status         domain.LeadStatus `json:"status" binding:"required,oneof=New Contacted Qualified Unqualified Converted Lost"`
	Source         domain.LeadSource `json:"source" binding:"required,oneof=Website Referral SocialMedia Email Phone Event Advertisement Other"`
	Priority       domain.Priority   `json:"priority" binding:"required,oneof=Low Medium High Urgent"`
	EstimatedValue decimal.Decimal   `json:"estimatedValue"`
	Notes          string            `json:"notes" binding:"max=2000"`
	AssignedUserID *uint             `json:"assignedUserId"`
}

// ConvertLeadResult is returned by lead conversion.
type ConvertLeadResult struct {
	Lead     LeadDTO     `json:"lead"`
	Customer CustomerDTO `json:"customer"`
}
