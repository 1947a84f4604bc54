package ports

import (
	"context"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// PaymentFilter narrows List results to payments made inside [From, To).
// Zero times mean unbounded; a zero CustomerID means all customers.
type PaymentFilter struct {
	CustomerID int64
	From       time.Time
	To         time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error)
	Delete(ctx context.Context, id int64) error
}
