package ports

import (
	"context"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// TrainingFilter narrows List results to sessions starting inside [From, To).
// Zero times mean unbounded.
type TrainingFilter struct {
	From time.Time
	To   time.Time
}

type TrainingRepository interface {
	Create(ctx context.Context, training *domain.Training) (*domain.Training, error)
	FindByID(ctx context.Context, id int64) (*domain.Training, error)
	List(ctx context.Context, filter TrainingFilter) ([]domain.Training, error)
	Update(ctx context.Context, training *domain.Training) error
	Delete(ctx context.Context, id int64) error
}
