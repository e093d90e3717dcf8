package service

import (
	"context"
	"fmt"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

// ContactService keeps at most one primary contact per customer: marking a
// contact primary demotes the previous one in the same commit.
type ContactService struct{ base }

func (s *ContactService) GetByID(ctx context.Context, id uint) (*dto.ContactDTO, error) {
	c, err := get[domain.Contact](ctx, s.uow.Contacts(), "contact", id)
	if err != nil {
		return nil, err
	}
	out := toContactDTO(c)
	return &out, nil
}

func (s *ContactService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.ContactDTO], error) {
	all, err := s.uow.Contacts().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.ContactDTO]{}, fmt.Errorf("list contacts: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toContactDTO), nil
}

func (s *ContactService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.ContactDTO], error) {
	found, err := s.uow.Contacts().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.ContactDTO]{}, fmt.Errorf("search contacts: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toContactDTO), nil
}

// GetByCustomer lists the contacts of a live customer.
func (s *ContactService) GetByCustomer(ctx context.Context, customerID uint) ([]dto.ContactDTO, error) {
	if _, err := get[domain.Customer](ctx, s.uow.Customers(), "customer", customerID); err != nil {
		return nil, err
	}
	found, err := s.uow.Contacts().GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("contacts of customer %d: %w", customerID, err)
	}
	return mapAll(found, toContactDTO), nil
}

func (s *ContactService) Create(ctx context.Context, in dto.CreateContactDTO, actor string) (*dto.ContactDTO, error) {
	if err := s.requireCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	c := &domain.Contact{
		CustomerID: in.CustomerID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Mobile:     in.Mobile,
		JobTitle:   in.JobTitle,
		Department: in.Department,
		Role:       in.Role,
		IsPrimary:  in.IsPrimary,
		Notes:      in.Notes,
	}
	if c.Role == "" {
		c.Role = domain.ContactOther
	}
	now := s.now()
	c.Created(actor, now)
	if c.IsPrimary {
		if err := s.demotePrimary(ctx, c.CustomerID, 0, actor); err != nil {
			return nil, err
		}
	}
	s.uow.Contacts().Add(c)
	if err := s.save(ctx, "create contact"); err != nil {
		return nil, err
	}
	out := toContactDTO(c)
	return &out, nil
}

func (s *ContactService) Update(ctx context.Context, id uint, in dto.UpdateContactDTO, actor string) (*dto.ContactDTO, error) {
	c, err := get[domain.Contact](ctx, s.uow.Contacts(), "contact", id)
	if err != nil {
		return nil, err
	}
	if in.CustomerID != c.CustomerID {
		if err := s.requireCustomer(ctx, in.CustomerID); err != nil {
			return nil, err
		}
	}
	c.CustomerID = in.CustomerID
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.Phone = in.Phone
	c.Mobile = in.Mobile
	c.JobTitle = in.JobTitle
	c.Department = in.Department
	c.Role = in.Role
	c.IsPrimary = in.IsPrimary
	c.Notes = in.Notes
	c.Touched(actor, s.now())
	if c.IsPrimary {
		if err := s.demotePrimary(ctx, c.CustomerID, c.ID, actor); err != nil {
			return nil, err
		}
	}
	s.uow.Contacts().Update(c)
	if err := s.save(ctx, "update contact"); err != nil {
		return nil, err
	}
	out := toContactDTO(c)
	return &out, nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return remove[domain.Contact](ctx, &s.base, s.uow.Contacts(), "contact", id)
}

func (s *ContactService) requireCustomer(ctx context.Context, customerID uint) error {
	ok, err := s.uow.Customers().Exists(ctx, customerID)
	if err != nil {
		return fmt.Errorf("check customer %d: %w", customerID, err)
	}
	if !ok {
		return invalid("customer %d does not exist", customerID)
	}
	return nil
}

// demotePrimary queues clearing the primary flag of the customer's current
// primary contact unless it is keep.
func (s *ContactService) demotePrimary(ctx context.Context, customerID, keep uint, actor string) error {
	prev, err := s.uow.Contacts().GetPrimaryByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("primary contact of customer %d: %w", customerID, err)
	}
	if prev == nil || prev.ID == keep {
		return nil
	}
	prev.IsPrimary = false
	prev.Touched(actor, s.now())
	s.uow.Contacts().Update(prev)
	return nil
}
