package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicate          = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOtpInvalid         = errors.New("otp invalid")
	ErrOtpExpired         = errors.New("otp expired")
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleAgent Role = "AGENT"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Username     string    `gorm:"size:50;not null;uniqueIndex:ux_users_username" json:"username"`
	Email        string    `gorm:"size:100;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         Role      `gorm:"size:10;not null;default:'AGENT'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Otp holds the single active password-reset code per email (upsert semantics).
type Otp struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Email     string    `gorm:"size:100;not null;uniqueIndex:ux_otps_email"`
	Code      string    `gorm:"size:10;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Otp) TableName() string { return "otps" }
