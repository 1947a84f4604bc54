package ports

import (
	"context"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. The store is the sole
// arbiter of email uniqueness; Create must fail with domain.ErrDuplicateEmail
// when the (lower-cased) email is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
