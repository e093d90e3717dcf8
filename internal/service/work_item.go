package service

import (
	"context"
	"fmt"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

type WorkItemService struct{ base }

func (s *WorkItemService) GetByID(ctx context.Context, id uint) (*dto.WorkItemDTO, error) {
	w, err := get[domain.WorkItem](ctx, s.uow.WorkItems(), "work item", id)
	if err != nil {
		return nil, err
	}
	out := toWorkItemDTO(w)
	return &out, nil
}

func (s *WorkItemService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.WorkItemDTO], error) {
	all, err := s.uow.WorkItems().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.WorkItemDTO]{}, fmt.Errorf("list work items: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toWorkItemDTO), nil
}

func (s *WorkItemService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.WorkItemDTO], error) {
	found, err := s.uow.WorkItems().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.WorkItemDTO]{}, fmt.Errorf("search work items: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toWorkItemDTO), nil
}

func (s *WorkItemService) GetByAssignedUser(ctx context.Context, userID uint) ([]dto.WorkItemDTO, error) {
	found, err := s.uow.WorkItems().GetByAssignedUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("work items of user %d: %w", userID, err)
	}
	return mapAll(found, toWorkItemDTO), nil
}

// GetOverdue lists open work items whose due date has passed.
func (s *WorkItemService) GetOverdue(ctx context.Context) ([]dto.WorkItemDTO, error) {
	found, err := s.uow.WorkItems().GetOverdue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("overdue work items: %w", err)
	}
	return mapAll(found, toWorkItemDTO), nil
}

func (s *WorkItemService) Create(ctx context.Context, in dto.CreateWorkItemDTO, actor string) (*dto.WorkItemDTO, error) {
	if err := s.requireUser(ctx, in.AssignedUserID); err != nil {
		return nil, err
	}
	w := &domain.WorkItem{
		Title:          in.Title,
		Description:    in.Description,
		Type:           in.Type,
		Priority:       in.Priority,
		Status:         in.Status,
		DueDate:        in.DueDate,
		AssignedUserID: in.AssignedUserID,
		CustomerID:     in.CustomerID,
		LeadID:         in.LeadID,
		OpportunityID:  in.OpportunityID,
	}
	if w.Type == "" {
		w.Type = domain.WorkItemOther
	}
	if w.Priority == "" {
		w.Priority = domain.PriorityMedium
	}
	if w.Status == "" {
		w.Status = domain.WorkItemNotStarted
	}
	now := s.now()
	if w.Status == domain.WorkItemCompleted {
		w.CompletedDate = &now
	}
	w.Created(actor, now)
	s.uow.WorkItems().Add(w)
	if err := s.save(ctx, "create work item"); err != nil {
		return nil, err
	}
	out := toWorkItemDTO(w)
	return &out, nil
}

func (s *WorkItemService) Update(ctx context.Context, id uint, in dto.UpdateWorkItemDTO, actor string) (*dto.WorkItemDTO, error) {
	w, err := get[domain.WorkItem](ctx, s.uow.WorkItems(), "work item", id)
	if err != nil {
		return nil, err
	}
	if in.AssignedUserID != w.AssignedUserID {
		if err := s.requireUser(ctx, in.AssignedUserID); err != nil {
			return nil, err
		}
	}
	w.Title = in.Title
	w.Description = in.Description
	w.Type = in.Type
	w.Priority = in.Priority
	w.Status = in.Status
	w.DueDate = in.DueDate
	w.CompletedDate = in.CompletedDate
	w.AssignedUserID = in.AssignedUserID
	w.CustomerID = in.CustomerID
	w.LeadID = in.LeadID
	w.OpportunityID = in.OpportunityID
	w.Touched(actor, s.now())
	s.uow.WorkItems().Update(w)
	if err := s.save(ctx, "update work item"); err != nil {
		return nil, err
	}
	out := toWorkItemDTO(w)
	return &out, nil
}

// Complete marks the work item completed now.
func (s *WorkItemService) Complete(ctx context.Context, id uint, actor string) (*dto.WorkItemDTO, error) {
	w, err := get[domain.WorkItem](ctx, s.uow.WorkItems(), "work item", id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	w.Status = domain.WorkItemCompleted
	w.CompletedDate = &now
	w.Touched(actor, now)
	s.uow.WorkItems().Update(w)
	if err := s.save(ctx, "complete work item"); err != nil {
		return nil, err
	}
	out := toWorkItemDTO(w)
	return &out, nil
}

func (s *WorkItemService) Delete(ctx context.Context, id uint) error {
	return remove[domain.WorkItem](ctx, &s.base, s.uow.WorkItems(), "work item", id)
}

func (s *WorkItemService) requireUser(ctx context.Context, userID uint) error {
	ok, err := s.uow.Users().Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %d: %w", userID, err)
	}
	if !ok {
		return invalid("user %d does not exist", userID)
	}
	return nil
}
