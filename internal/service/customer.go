package service

import (
	"context"
	"fmt"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

type CustomerService struct{ base }

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*dto.CustomerDTO, error) {
	c, err := get[domain.Customer](ctx, s.uow.Customers(), "customer", id)
	if err != nil {
		return nil, err
	}
	out := toCustomerDTO(c)
	return &out, nil
}

// GetAll pages over the full customer list in memory.
func (s *CustomerService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.CustomerDTO], error) {
	all, err := s.uow.Customers().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.CustomerDTO]{}, fmt.Errorf("list customers: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toCustomerDTO), nil
}

func (s *CustomerService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.CustomerDTO], error) {
	found, err := s.uow.Customers().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.CustomerDTO]{}, fmt.Errorf("search customers: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toCustomerDTO), nil
}

func (s *CustomerService) GetByStatus(ctx context.Context, status domain.CustomerStatus) ([]dto.CustomerDTO, error) {
	found, err := s.uow.Customers().GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("customers by status: %w", err)
	}
	return mapAll(found, toCustomerDTO), nil
}

func (s *CustomerService) Create(ctx context.Context, in dto.CreateCustomerDTO, actor string) (*dto.CustomerDTO, error) {
	c := &domain.Customer{
		CompanyName: in.CompanyName,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Country:     in.Country,
		Website:     in.Website,
		Industry:    in.Industry,
		Type:        in.Type,
		Status:      in.Status,
		Notes:       in.Notes,
	}
	if c.Type == "" {
		c.Type = customerTypeFor(c.CompanyName)
	}
	if c.Status == "" {
		c.Status = domain.CustomerActive
	}
	c.Created(actor, s.now())
	s.uow.Customers().Add(c)
	if err := s.save(ctx, "create customer"); err != nil {
		return nil, err
	}
	out := toCustomerDTO(c)
	return &out, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint, in dto.UpdateCustomerDTO, actor string) (*dto.CustomerDTO, error) {
	c, err := get[domain.Customer](ctx, s.uow.Customers(), "customer", id)
	if err != nil {
		return nil, err
	}
	c.CompanyName = in.CompanyName
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.City = in.City
	c.State = in.State
	c.PostalCode = in.PostalCode
	c.Country = in.Country
	c.Website = in.Website
	c.Industry = in.Industry
	c.Type = in.Type
	c.Status = in.Status
	c.Notes = in.Notes
	c.Touched(actor, s.now())
	s.uow.Customers().Update(c)
	if err := s.save(ctx, "update customer"); err != nil {
		return nil, err
	}
	out := toCustomerDTO(c)
	return &out, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return remove[domain.Customer](ctx, &s.base, s.uow.Customers(), "customer", id)
}

func customerTypeFor(companyName string) domain.CustomerType {
	if companyName != "" {
		return domain.CustomerCompany
	}
	return domain.CustomerIndividual
}
