package domain

import (
	"errors"
	"time"
)

// User represents a system user (an employee of the sponsoring
// organization, identified by an EDP number).
type User struct {
	ID             string
	EDPNumber      string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level
type Role string

const (
	// RoleAdmin has full access, including deletes and society/user management
	RoleAdmin Role = "admin"

	// RoleOperator can create and update records, but cannot delete them
	RoleOperator Role = "operator"

	// RoleViewer can only view resources, no mutations
	RoleViewer Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleOperator: true,
	RoleViewer:   true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanCreate checks if the role can create or update records
func (r Role) CanCreate() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanDelete checks if the role can delete records
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanManageSocieties checks if the role can manage societies and users
func (r Role) CanManageSocieties() bool {
	return r == RoleAdmin
}

// CanViewAll checks if the role can view all resources
func (r Role) CanViewAll() bool {
	// All authenticated users can view
	return r.IsValid()
}

// Authentication and user management errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("a user with this email already exists")
	ErrInvalidRole      = errors.New("invalid role")
)
