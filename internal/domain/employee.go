package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int32     `json:"-"`
}

// StaffMember is the projection of an employee used by the assignment UI.
type StaffMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
