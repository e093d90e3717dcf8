package service

import (
	"context"
	"fmt"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/pkg/utils"
)

type UserService struct{ base }

func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserDTO, error) {
	u, err := get[domain.User](ctx, s.uow.Users(), "user", id)
	if err != nil {
		return nil, err
	}
	out := toUserDTO(u)
	return &out, nil
}

func (s *UserService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.UserDTO], error) {
	all, err := s.uow.Users().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.UserDTO]{}, fmt.Errorf("list users: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toUserDTO), nil
}

func (s *UserService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.UserDTO], error) {
	found, err := s.uow.Users().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.UserDTO]{}, fmt.Errorf("search users: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toUserDTO), nil
}

func (s *UserService) GetByRole(ctx context.Context, role domain.UserRole) ([]dto.UserDTO, error) {
	found, err := s.uow.Users().GetByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("users by role: %w", err)
	}
	return mapAll(found, toUserDTO), nil
}

// Create registers a user. Username and email must be unused.
func (s *UserService) Create(ctx context.Context, in dto.CreateUserDTO, actor string) (*dto.UserDTO, error) {
	if err := s.checkUnique(ctx, in.Username, in.Email, 0); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         in.Role,
		Status:       in.Status,
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.Status == "" {
		u.Status = domain.UserActive
	}
	u.Created(actor, s.now())
	s.uow.Users().Add(u)
	if err := s.save(ctx, "create user"); err != nil {
		return nil, err
	}
	out := toUserDTO(u)
	return &out, nil
}

// Update overwrites profile, role and status. The username and password are
// not changed here.
func (s *UserService) Update(ctx context.Context, id uint, in dto.UpdateUserDTO, actor string) (*dto.UserDTO, error) {
	u, err := get[domain.User](ctx, s.uow.Users(), "user", id)
	if err != nil {
		return nil, err
	}
	if in.Email != u.Email {
		if err := s.checkUnique(ctx, "", in.Email, u.ID); err != nil {
			return nil, err
		}
	}
	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Phone = in.Phone
	u.Role = in.Role
	u.Status = in.Status
	u.Touched(actor, s.now())
	s.uow.Users().Update(u)
	if err := s.save(ctx, "update user"); err != nil {
		return nil, err
	}
	out := toUserDTO(u)
	return &out, nil
}

func (s *UserService) ResetPassword(ctx context.Context, id uint, newPassword, actor string) error {
	u, err := get[domain.User](ctx, s.uow.Users(), "user", id)
	if err != nil {
		return err
	}
	return setPassword(ctx, &s.base, u, newPassword, actor)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return remove[domain.User](ctx, &s.base, s.uow.Users(), "user", id)
}

func (s *UserService) checkUnique(ctx context.Context, username, email string, self uint) error {
	if username != "" {
		u, err := s.uow.Users().GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("lookup username: %w", err)
		}
		if u != nil && u.ID != self {
			return invalid("username %q is taken", username)
		}
	}
	u, err := s.uow.Users().GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup email: %w", err)
	}
	if u != nil && u.ID != self {
		return invalid("email %q is taken", email)
	}
	return nil
}

func setPassword(ctx context.Context, b *base, u *domain.User, pw, actor string) error {
	hash, err := utils.HashPassword(pw)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash
	u.Touched(actor, b.now())
	b.uow.Users().Update(u)
	return b.save(ctx, "set password")
}
