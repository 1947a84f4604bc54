package ports

import (
	"context"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// CreateUserInput carries the fields an administrator supplies when opening
// an account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput mutates an existing account. Empty fields are left as-is.
type UpdateUserInput struct {
	Name     string
	Role     string
	Password string
}

type AuthService interface {
	// Login verifies credentials and issues a session token. Unknown email and
	// wrong password both fail with domain.ErrBadCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	// EnsureAdmin creates the bootstrap admin account if no user exists with
	// the given email. Running it twice is a no-op.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// LoginThrottle limits repeated failed logins per account key.
type LoginThrottle interface {
	// Allow reports whether another attempt may proceed for key.
	Allow(ctx context.Context, key string) (bool, error)
	// Failure records a failed attempt for key.
	Failure(ctx context.Context, key string) error
	// Reset clears the failure count for key after a successful login.
	Reset(ctx context.Context, key string) error
}
