package service

import (
	"context"
	"fmt"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

type OpportunityService struct{ base }

func (s *OpportunityService) GetByID(ctx context.Context, id uint) (*dto.OpportunityDTO, error) {
	o, err := get[domain.Opportunity](ctx, s.uow.Opportunities(), "opportunity", id)
	if err != nil {
		return nil, err
	}
	out := toOpportunityDTO(o)
	return &out, nil
}

func (s *OpportunityService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.OpportunityDTO], error) {
	all, err := s.uow.Opportunities().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.OpportunityDTO]{}, fmt.Errorf("list opportunities: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toOpportunityDTO), nil
}

func (s *OpportunityService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.OpportunityDTO], error) {
	found, err := s.uow.Opportunities().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.OpportunityDTO]{}, fmt.Errorf("search opportunities: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toOpportunityDTO), nil
}

func (s *OpportunityService) GetByCustomer(ctx context.Context, customerID uint) ([]dto.OpportunityDTO, error) {
	found, err := s.uow.Opportunities().GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("opportunities of customer %d: %w", customerID, err)
	}
	return mapAll(found, toOpportunityDTO), nil
}

func (s *OpportunityService) GetByStage(ctx context.Context, stage domain.OpportunityStage) ([]dto.OpportunityDTO, error) {
	found, err := s.uow.Opportunities().GetByStage(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("opportunities by stage: %w", err)
	}
	return mapAll(found, toOpportunityDTO), nil
}

func (s *OpportunityService) Create(ctx context.Context, in dto.CreateOpportunityDTO, actor string) (*dto.OpportunityDTO, error) {
	o := &domain.Opportunity{
		Name:              in.Name,
		Description:       in.Description,
		CustomerID:        in.CustomerID,
		AssignedUserID:    in.AssignedUserID,
		Stage:             in.Stage,
		Status:            in.Status,
		Amount:            in.Amount,
		Probability:       in.Probability,
		ExpectedCloseDate: in.ExpectedCloseDate,
		Notes:             in.Notes,
	}
	if o.Stage == "" {
		o.Stage = domain.StageProspecting
	}
	if o.Status == "" {
		o.Status = domain.OpportunityOpen
	}
	o.Created(actor, s.now())
	s.uow.Opportunities().Add(o)
	if err := s.save(ctx, "create opportunity"); err != nil {
		return nil, err
	}
	out := toOpportunityDTO(o)
	return &out, nil
}

func (s *OpportunityService) Update(ctx context.Context, id uint, in dto.UpdateOpportunityDTO, actor string) (*dto.OpportunityDTO, error) {
	o, err := get[domain.Opportunity](ctx, s.uow.Opportunities(), "opportunity", id)
	if err != nil {
		return nil, err
	}
	o.Name = in.Name
	o.Description = in.Description
	o.CustomerID = in.CustomerID
	o.AssignedUserID = in.AssignedUserID
	o.Stage = in.Stage
	o.Status = in.Status
	o.Amount = in.Amount
	o.Probability = in.Probability
	o.ExpectedCloseDate = in.ExpectedCloseDate
	o.ActualCloseDate = in.ActualCloseDate
	o.Notes = in.Notes
	o.Touched(actor, s.now())
	s.uow.Opportunities().Update(o)
	if err := s.save(ctx, "update opportunity"); err != nil {
		return nil, err
	}
	out := toOpportunityDTO(o)
	return &out, nil
}

// UpdateStage moves an opportunity to any stage. Status is left untouched,
// even for the closed stages.
func (s *OpportunityService) UpdateStage(ctx context.Context, id uint, stage domain.OpportunityStage, actor string) (*dto.OpportunityDTO, error) {
	o, err := get[domain.Opportunity](ctx, s.uow.Opportunities(), "opportunity", id)
	if err != nil {
		return nil, err
	}
	o.Stage = stage
	o.Touched(actor, s.now())
	s.uow.Opportunities().Update(o)
	if err := s.save(ctx, "update opportunity stage"); err != nil {
		return nil, err
	}
	out := toOpportunityDTO(o)
	return &out, nil
}

func (s *OpportunityService) Delete(ctx context.Context, id uint) error {
	return remove[domain.Opportunity](ctx, &s.base, s.uow.Opportunities(), "opportunity", id)
}
