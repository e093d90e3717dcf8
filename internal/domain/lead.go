package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeadStatus string

const (
	LeadNew         LeadStatus = "New"
	LeadContacted   LeadStatus = "Contacted"
	LeadQualified   LeadStatus = "Qualified"
	LeadUnqualified LeadStatus = "Unqualified"
	LeadConverted   LeadStatus = "Converted"
	LeadLost        LeadStatus = "Lost"
)

type LeadSource string

const (
	SourceWebsite       LeadSource = "Website"
	SourceReferral      LeadSource = "Referral"
	SourceSocialMedia   LeadSource = "SocialMedia"
	SourceEmail         LeadSource = "Email"
	SourcePhone         LeadSource = "Phone"
	SourceEvent         LeadSource = "Event"
	SourceAdvertisement LeadSource = "Advertisement"
	SourceOther         LeadSource = "Other"
)

// Priority is shared by leads and work items.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

type Lead struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	FirstName           string          `gorm:"size:100;not null" json:"firstName"`
	LastName            string          `gorm:"size:100;not null" json:"lastName"`
	CompanyName         string          `gorm:"size:200" json:"companyName"`
	Email               string          `gorm:"size:255;index" json:"email"`
	Phone               string          `gorm:"size:50" json:"phone"`
	JobTitle            string          `gorm:"size:100" json:"jobTitle"`
	Status              LeadStatus      `gorm:"size:20;not null;index" json:"status"`
	Source              LeadSource      `gorm:"size:20;not null" json:"source"`
	Priority            Priority        `gorm:"size:20;not null" json:"priority"`
	EstimatedValue      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"estimatedValue"`
	Notes               string          `gorm:"size:2000" json:"notes"`
	AssignedUserID      *uint           `gorm:"index" json:"assignedUserId"`
	ConvertedCustomerID *uint           `json:"convertedCustomerId"`
	ConvertedDate       *time.Time      `json:"convertedDate"`
	Audit
}
