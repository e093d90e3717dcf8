package dto

import "go-gin-gorm-crm/internal/domain"

type CustomerDTO struct {
	ID          uint                  `json:"id"`
	CompanyName string                `json:"companyName"`
	FirstName   string                `json:"firstName"`
	LastName    string                `json:"lastName"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone"`
	Address     string                `json:"address"`
	City        string                `json:"city"`
	State       string                `json:"state"`
	PostalCode  string                `json:"postalCode"`
	Country     string                `json:"country"`
	Website     string                `json:"website"`
	Industry    string                `json:"industry"`
	Type        domain.CustomerType   `json:"type"`
	Status      domain.CustomerStatus `json:"status"`
	Notes       string                `json:"notes"`
	AuditDTO
}

type CreateCustomerDTO struct {
	CompanyName string                `json:"companyName" binding:"max=200"`
	FirstName   string                `json:"firstName" binding:"max=100"`
	LastName    string                `json:"lastName" binding:"max=100"`
	Email       string                `json:"email" binding:"required,email,max=255"`
	Phone       string                `json:"phone" binding:"max=50"`
	Address     string                `json:"address" binding:"max=500"`
	City        string                `json:"city" binding:"max=100"`
	State       string                `json:"state" binding:"max=100"`
	PostalCode  string                `json:"postalCode" binding:"max=20"`
	Country     string                `json:"country" binding:"max=100"`
	Website     string                `json:"website" binding:"omitempty,url,max=255"`
	Industry    string                `json:"industry" binding:"max=100"`
	Type        domain.CustomerType   `json:"type" binding:"omitempty,oneof=Individual Company"`
	Status      domain.CustomerStatus `json:"status" binding:"omitempty,oneof=Active Inactive Suspended"`
	Notes       string                `json:"notes" binding:"max=2000"`
}

// UpdateCustomerDTO overwrites every mutable field; omitted fields are reset
// to their zero value.
type UpdateCustomerDTO struct {
	ID          uint                  `json:"id"`
	CompanyName string                `json:"companyName" binding:"max=200"`
	FirstName   string                `json:"firstName" binding:"max=100"`
	LastName    string                `json:"lastName" binding:"max=100"`
	Email       string                `json:"email" binding:"required,email,max=255"`
	Phone       string                `json:"phone" binding:"max=50"`
	Address     string                `json:"address" binding:"max=500"`
	City        string                `json:"city" binding:"max=100"`
	State       string                `json:"state" binding:"max=100"`
	PostalCode  string                `json:"postalCode" binding:"max=20"`
	Country     string                `json:"country" binding:"max=100"`
	Website     string                `json:"website" binding:"omitempty,url,max=255"`
	Industry    string                `json:"industry" binding:"max=100"`
	Type        domain.CustomerType   `json:"type" binding:"required,oneof=Individual Company"`
	Status      domain.CustomerStatus `json:"status" binding:"required,oneof=Active Inactive Suspended"`
	Notes       string                `json:"notes" binding:"max=2000"`
}

type ContactDTO struct {
	ID         uint               `json:"id"`
	CustomerID uint               `json:"customerId"`
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Mobile     string             `json:"mobile"`
	JobTitle   string             `json:"jobTitle"`
	Department string             `json:"department"`
	Role       domain.ContactRole `json:"role"`
	IsPrimary  bool               `json:"isPrimary"`
	Notes      string             `json:"notes"`
	AuditDTO
}

type CreateContactDTO struct {
	CustomerID uint               `json:"customerId" binding:"required"`
	FirstName  string             `json:"firstName" binding:"required,max=100"`
	LastName   string             `json:"lastName" binding:"required,max=100"`
	Email      string             `json:"email" binding:"omitempty,email,max=255"`
	Phone      string             `json:"phone" binding:"max=50"`
	Mobile     string             `json:"mobile" binding:"max=50"`
	JobTitle   string             `json:"jobTitle" binding:"max=100"`
	Department string             `json:"department" binding:"max=100"`
	Role       domain.ContactRole `json:"role" binding:"omitempty,oneof=Primary Billing Technical DecisionMaker Influencer Other"`
	IsPrimary  bool               `json:"isPrimary"`
	Notes      string             `json:"notes" binding:"max=2000"`
}

type UpdateContactDTO struct {
	ID         uint               `json:"id"`
	CustomerID uint               `json:"customerId" binding:"required"`
	FirstName  string             `json:"firstName" binding:"required,max=100"`
	LastName   string             `json:"lastName" binding:"required,max=100"`
	Email      string             `json:"email" binding:"omitempty,email,max=255"`
	Phone      string             `json:"phone" binding:"max=50"`
	Mobile     string             `json:"mobile" binding:"max=50"`
	JobTitle   string             `json:"jobTitle" binding:"max=100"`
	Department string             `json:"department" binding:"max=100"`
	Role       domain.ContactRole `json:"role" binding:"required,oneof=Primary Billing Technical DecisionMaker Influencer Other"`
	IsPrimary  bool               `json:"isPrimary"`
	Notes      string             `json:"notes" binding:"max=2000"`
}
