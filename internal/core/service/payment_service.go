package service

import (
	"context"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

// PaymentService records and lists customer payments.
type PaymentService struct {
	repo ports.PaymentRepository
}

func NewPaymentService(repo ports.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) Create(ctx context.Context, in ports.PaymentInput) (*domain.Payment, error) {
	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payment := &domain.Payment{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		PaidAt:     paidAt.UTC(),
		Method:     in.Method,
		Note:       in.Note,
		CreatedAt:  time.Now().UTC(),
	}
	return s.repo.Create(ctx, payment)
}

func (s *PaymentService) List(ctx context.Context, filter ports.PaymentFilter) ([]domain.Payment, error) {
	return s.repo.List(ctx, filter)
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
