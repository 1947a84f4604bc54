package ports

import (
	"context"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// CustomerInput carries the writable fields of a customer record.
type CustomerInput struct {
	FullName         string
	Phone            string
	Email            string
	Status           string
	Notes            string
	AssignedToUserID int64
}

// ListCustomersInput describes a list query as the caller phrased it.
// AssignedTo is the raw query value: "", "me", or a numeric user id.
type ListCustomersInput struct {
	AssignedTo string
	Status     string
}

type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	// List applies the ownership filter: "me" resolves to the caller's id for
	// any authenticated caller; an explicit id requires a supervisory role.
	List(ctx context.Context, caller domain.Identity, in ListCustomersInput) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
