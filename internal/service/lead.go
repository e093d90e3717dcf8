package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

type LeadService struct{ base }

func (s *LeadService) GetByID(ctx context.Context, id uint) (*dto.LeadDTO, error) {
	l, err := get[domain.Lead](ctx, s.uow.Leads(), "lead", id)
	if err != nil {
		return nil, err
	}
	out := toLeadDTO(l)
	return &out, nil
}

func (s *LeadService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.LeadDTO], error) {
	all, err := s.uow.Leads().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.LeadDTO]{}, fmt.Errorf("list leads: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toLeadDTO), nil
}

func (s *LeadService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.LeadDTO], error) {
	found, err := s.uow.Leads().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.LeadDTO]{}, fmt.Errorf("search leads: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toLeadDTO), nil
}

func (s *LeadService) GetByStatus(ctx context.Context, status domain.LeadStatus) ([]dto.LeadDTO, error) {
	found, err := s.uow.Leads().GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("leads by status: %w", err)
	}
	return mapAll(found, toLeadDTO), nil
}

func (s *LeadService) GetByAssignedUser(ctx context.Context, userID uint) ([]dto.LeadDTO, error) {
	found, err := s.uow.Leads().GetByAssignedUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("leads of user %d: %w", userID, err)
	}
	return mapAll(found, toLeadDTO), nil
}

func (s *LeadService) Create(ctx context.Context, in dto.CreateLeadDTO, actor string) (*dto.LeadDTO, error) {
	l := &domain.Lead{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		CompanyName:    in.CompanyName,
		Email:          in.Email,
		Phone:          in.Phone,
		JobTitle:       in.JobTitle,
		Status:         in.Status,
		Source:         in.Source,
		Priority:       in.Priority,
		EstimatedValue: in.EstimatedValue,
		Notes:          in.Notes,
		AssignedUserID: in.AssignedUserID,
	}
	if l.Status == "" {
		l.Status = domain.LeadNew
	}
	if l.Source == "" {
		l.Source = domain.SourceOther
	}
	if l.Priority == "" {
		l.Priority = domain.PriorityMedium
	}
	l.Created(actor, s.now())
	s.uow.Leads().Add(l)
	if err := s.save(ctx, "create lead"); err != nil {
		return nil, err
	}
	out := toLeadDTO(l)
	return &out, nil
}

func (s *LeadService) Update(ctx context.Context, id uint, in dto.UpdateLeadDTO, actor string) (*dto.LeadDTO, error) {
	l, err := get[domain.Lead](ctx, s.uow.Leads(), "lead", id)
	if err != nil {
		return nil, err
	}
	l.FirstName = in.FirstName
	l.LastName = in.LastName
	l.CompanyName = in.CompanyName
	l.Email = in.Email
	l.Phone = in.Phone
	l.JobTitle = in.JobTitle
	l.Status = in.Status
	l.Source = in.Source
	l.Priority = in.Priority
	l.EstimatedValue = in.EstimatedValue
	l.Notes = in.Notes
	l.AssignedUserID = in.AssignedUserID
	l.Touched(actor, s.now())
	s.uow.Leads().Update(l)
	if err := s.save(ctx, "update lead"); err != nil {
		return nil, err
	}
	out := toLeadDTO(l)
	return &out, nil
}

func (s *LeadService) Delete(ctx context.Context, id uint) error {
	return remove[domain.Lead](ctx, &s.base, s.uow.Leads(), "lead", id)
}

// Convert turns a lead into a new customer and marks the lead converted.
// Both writes commit together or not at all.
func (s *LeadService) Convert(ctx context.Context, id uint, actor string) (res *dto.ConvertLeadResult, err error) {
	if err := s.uow.BeginTransaction(ctx); err != nil {
		return nil, fmt.Errorf("convert lead %d: %w", id, err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := s.uow.Rollback(); rbErr != nil && !errors.Is(rbErr, domain.ErrNoTransaction) {
			s.log.Warn("rollback lead conversion", zap.Uint("lead", id), zap.Error(rbErr))
		}
	}()

	l, err := get[domain.Lead](ctx, s.uow.Leads(), "lead", id)
	if err != nil {
		return nil, err
	}
	if l.Status == domain.LeadConverted {
		return nil, invalid("lead %d is already converted", id)
	}

	now := s.now()
	c := &domain.Customer{
		CompanyName: l.CompanyName,
		FirstName:   l.FirstName,
		LastName:    l.LastName,
		Email:       l.Email,
		Phone:       l.Phone,
		Type:        customerTypeFor(l.CompanyName),
		Status:      domain.CustomerActive,
		Notes:       l.Notes,
	}
	c.Created(actor, now)
	s.uow.Customers().Add(c)
	if err = s.flush(ctx, "convert lead"); err != nil {
		return nil, err
	}

	l.Status = domain.LeadConverted
	l.ConvertedCustomerID = &c.ID
	l.ConvertedDate = &now
	l.Touched(actor, now)
	s.uow.Leads().Update(l)
	if err = s.flush(ctx, "convert lead"); err != nil {
		return nil, err
	}
	if err = s.uow.Commit(); err != nil {
		return nil, fmt.Errorf("convert lead %d: commit: %w", id, err)
	}
	s.invalidateDashboard(ctx)
	return &dto.ConvertLeadResult{Lead: toLeadDTO(l), Customer: toCustomerDTO(c)}, nil
}
