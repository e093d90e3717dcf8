package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleManager  UserRole = "Manager"
	RoleUser     UserRole = "User"
	RoleReadOnly UserRole = "ReadOnly"
)

type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserInactive  UserStatus = "Inactive"
	UserSuspended UserStatus = "Suspended"
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email         string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash  string     `gorm:"size:100;not null" json:"-"`
	FirstName     string     `gorm:"size:100" json:"firstName"`
	LastName      string     `gorm:"size:100" json:"lastName"`
	Phone         string     `gorm:"size:50" json:"phone"`
	Role          UserRole   `gorm:"size:16;not null" json:"role"`
	Status        UserStatus `gorm:"size:16;not null" json:"status"`
	LastLoginDate *time.Time `json:"lastLoginDate"`
	Audit
}
