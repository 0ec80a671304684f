package models

import "time"

// UserRole is the account role. Only admins can reach the management surface.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// UserModel is an admin account. Email comparison is case-insensitive: the
// repository lowercases before storing and querying.
type UserModel struct {
	Base
	Name             string     `json:"name"`
	Email            string     `json:"email"    gorm:"uniqueIndex;not null"`
	Password         string     `json:"-"        gorm:"not null"`
	Role             UserRole   `json:"role"     gorm:"default:'admin'"`
	ResetToken       string     `json:"-"        gorm:"index"` // SHA-256 digest, never the raw token
	ResetTokenExpiry *time.Time `json:"-"`
}

func (UserModel) TableName() string { return "users" }
