package domain

import (
	"errors"
	"time"
)

const (
	RoleUser   = "user"
	RoleSitter = "sitter"
	RoleAdmin  = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account: a pet owner, a sitter, or an admin.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one a user may self-register with.
// Admins are provisioned out of band, never through the register endpoint.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleSitter
}
