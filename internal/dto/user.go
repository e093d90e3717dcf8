package dto

import (
	"time"

	"go-gin-gorm-crm/internal/domain"
)

type UserDTO struct {
	ID            uint              `json:"id"`
	Username      string            `json:"username"`
	Email         string            `json:"email"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Phone         string            `json:"phone"`
	Role          domain.UserRole   `json:"role"`
	Status        domain.UserStatus `json:"status"`
	LastLoginDate *time.Time        `json:"lastLoginDate"`
	AuditDTO
}

type CreateUserDTO struct {
	Username  string            `json:"username" binding:"required,min=3,max=50"`
	Email     string            `json:"email" binding:"required,email,max=255"`
	Password  string            `json:"password" binding:"required,min=6,max=72"`
	FirstName string            `json:"firstName" binding:"max=100"`
	LastName  string            `json:"lastName" binding:"max=100"`
	Phone     string            `json:"phone" binding:"max=50"`
	Role      domain.UserRole   `json:"role" binding:"omitempty,oneof=Admin Manager User ReadOnly"`
	Status    domain.UserStatus `json:"status" binding:"omitempty,oneof=Active Inactive Suspended"`
}

type UpdateUserDTO struct {
	ID        uint              `json:"id"`
	Email     string            `json:"email" binding:"required,email,max=255"`
	FirstName string            `json:"firstName" binding:"max=100"`
	LastName  string            `json:"lastName" binding:"max=100"`
	Phone     string            `json:"phone" binding:"max=50"`
	Role      domain.UserRole   `json:"role" binding:"required,oneof=Admin Manager User ReadOnly"`
	Status    domain.UserStatus `json:"status" binding:"required,oneof=Active Inactive Suspended"`
}

type ResetPasswordDTO struct {
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}
