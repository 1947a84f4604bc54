package ports

import (
	"context"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// CustomerFilter narrows List results. A nil AssignedTo means no ownership
// restriction; an empty Status means all statuses.
type CustomerFilter struct {
	AssignedTo *int64
	Status     string
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}
