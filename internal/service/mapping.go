package service

import (
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

func auditDTO(a domain.Audit) dto.AuditDTO {
	return dto.AuditDTO{
		CreatedAt: a.CreatedAt,
		CreatedBy: a.CreatedBy,
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: a.UpdatedBy,
	}
}

func toCustomerDTO(c *domain.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		PostalCode:  c.PostalCode,
		Country:     c.Country,
		Website:     c.Website,
		Industry:    c.Industry,
		Type:        c.Type,
		Status:      c.Status,
		Notes:       c.Notes,
		AuditDTO:    auditDTO(c.Audit),
	}
}

func toContactDTO(c *domain.Contact) dto.ContactDTO {
	return dto.ContactDTO{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Mobile:     c.Mobile,
		JobTitle:   c.JobTitle,
		Department: c.Department,
		Role:       c.Role,
		IsPrimary:  c.IsPrimary,
		Notes:      c.Notes,
		AuditDTO:   auditDTO(c.Audit),
	}
}

func toLeadDTO(l *domain.Lead) dto.LeadDTO {
	return dto.LeadDTO{
		ID:                  l.ID,
		FirstName:           l.FirstName,
		LastName:            l.LastName,
		CompanyName:         l.CompanyName,
		Email:               l.Email,
		Phone:               l.Phone,
		JobTitle:            l.JobTitle,
		Status:              l.Status,
		Source:              l.Source,
		Priority:            l.Priority,
		EstimatedValue:      l.EstimatedValue,
		Notes:               l.Notes,
		AssignedUserID:      l.AssignedUserID,
		ConvertedCustomerID: l.ConvertedCustomerID,
		ConvertedDate:       l.ConvertedDate,
		AuditDTO:            auditDTO(l.Audit),
	}
}

func toOpportunityDTO(o *domain.Opportunity) dto.OpportunityDTO {
	return dto.OpportunityDTO{
		ID:                o.ID,
		Name:              o.Name,
		Description:       o.Description,
		CustomerID:        o.CustomerID,
		AssignedUserID:    o.AssignedUserID,
		Stage:             o.Stage,
		Status:            o.Status,
		Amount:            o.Amount,
		Probability:       o.Probability,
		ExpectedCloseDate: o.ExpectedCloseDate,
		ActualCloseDate:   o.ActualCloseDate,
		Notes:             o.Notes,
		AuditDTO:          auditDTO(o.Audit),
	}
}

func toWorkItemDTO(w *domain.WorkItem) dto.WorkItemDTO {
	return dto.WorkItemDTO{
		ID:             w.ID,
		Title:          w.Title,
		Description:    w.Description,
		Type:           w.Type,
		Priority:       w.Priority,
		Status:         w.Status,
		DueDate:        w.DueDate,
		CompletedDate:  w.CompletedDate,
		AssignedUserID: w.AssignedUserID,
		CustomerID:     w.CustomerID,
		LeadID:         w.LeadID,
		OpportunityID:  w.OpportunityID,
		AuditDTO:       auditDTO(w.Audit),
	}
}

func toProductDTO(p *domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Cost:        p.Cost,
		Category:    p.Category,
		IsActive:    p.IsActive,
		AuditDTO:    auditDTO(p.Audit),
	}
}

func toUserDTO(u *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Role:          u.Role,
		Status:        u.Status,
		LastLoginDate: u.LastLoginDate,
		AuditDTO:      auditDTO(u.Audit),
	}
}
