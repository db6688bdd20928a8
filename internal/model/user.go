package model

import (
	"time"
)

// Role gates which part of the API a user may call.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// User is an account row. The ID is supplied at signup (student PRN,
// faculty ID or admin ID) and doubles as the primary key.
type User struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Name       string    `gorm:"not null" json:"name"`
	Role       Role      `gorm:"not null;size:16" json:"role"`
	Department string    `gorm:"not null;index" json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
