package domain

import (
	"errors"
	"time"
)

// Recognised roles. Role strings are stored upper-case.
const (
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleSales      = "SALES"
	RoleMarketing  = "MARKETING"
	RoleInstructor = "INSTRUCTOR"
	RoleAccountant = "ACCOUNTANT"
)

// Roles is the closed set of valid role values.
var Roles = []string{
	RoleAdmin,
	RoleManager,
	RoleSales,
	RoleMarketing,
	RoleInstructor,
	RoleAccountant,
}

// ValidRole reports whether role belongs to the recognised set.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

var (
	ErrBadCredentials       = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidRole          = errors.New("invalid role")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)

// User models an account that can authenticate against the system.
// Emails are stored lower-cased; uniqueness is enforced by the store.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped authenticated caller, resolved from a valid
// token plus a user lookup. It never carries the password hash.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IdentityOf projects a stored user into its request-scoped identity.
func IdentityOf(u *User) Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
