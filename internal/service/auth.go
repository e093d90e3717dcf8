package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-gin-gorm-crm/internal/core/auth"
	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
	"go-gin-gorm-crm/pkg/utils"
)

const systemActor = "system"

type AuthService struct {
	base
	jwt *auth.JWTer
}

// Login checks the credentials of an active user, records the login time and
// issues an access token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in dto.LoginDTO) (*dto.LoginResponse, error) {
	if s.jwt == nil {
		return nil, errors.New("login: token issuer not configured")
	}
	u, err := s.uow.Users().GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		s.log.Info("login rejected", zap.String("username", in.Username))
		return nil, domain.ErrInvalidCredentials
	}
	if u.Status != domain.UserActive {
		return nil, domain.ErrInactiveUser
	}

	now := s.now()
	u.LastLoginDate = &now
	s.uow.Users().Update(u)
	if err := s.save(ctx, "record login"); err != nil {
		return nil, err
	}

	token, exp, err := s.jwt.Issue(u.ID, u.Username, u.Email, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: exp, User: toUserDTO(u)}, nil
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, uid uint) (*dto.UserDTO, error) {
	u, err := get[domain.User](ctx, s.uow.Users(), "user", uid)
	if err != nil {
		return nil, err
	}
	out := toUserDTO(u)
	return &out, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, uid uint, in dto.ChangePasswordDTO, actor string) error {
	u, err := get[domain.User](ctx, s.uow.Users(), "user", uid)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(in.CurrentPassword, u.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	return setPassword(ctx, &s.base, u, in.NewPassword, actor)
}

// EnsureAdmin creates the bootstrap administrator when no admin exists yet.
// It reports whether a user was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	admins, err := s.uow.Users().GetByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	if len(admins) > 0 {
		return false, nil
	}
	if username == "" || password == "" {
		return false, invalid("bootstrap admin credentials are empty")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	}
	u.Created(systemActor, s.now())
	s.uow.Users().Add(u)
	if err := s.save(ctx, "seed admin"); err != nil {
		return false, err
	}
	s.log.Info("bootstrap admin created", zap.String("username", username))
	return true, nil
}
