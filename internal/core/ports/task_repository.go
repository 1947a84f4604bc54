package ports

import (
	"context"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// TaskFilter narrows List results. Nil fields mean no restriction.
type TaskFilter struct {
	AssignedTo *int64
	Done       *bool
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
}
