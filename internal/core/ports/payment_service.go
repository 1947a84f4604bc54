package ports

import (
	"context"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// PaymentInput carries the writable fields of a payment record.
type PaymentInput struct {
	CustomerID int64
	Amount     float64
	PaidAt     time.Time
	Method     string
	Note       string
}

type PaymentService interface {
	Create(ctx context.Context, in PaymentInput) (*domain.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error)
	Delete(ctx context.Context, id int64) error
}

// MonthIncome is one row of the finance summary.
type MonthIncome struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
	Count  int     `json:"count"`
}

// FinanceSummary aggregates all recorded payments.
type FinanceSummary struct {
	TotalIncome  float64       `json:"total_income"`
	PaymentCount int           `json:"payment_count"`
	Months       []MonthIncome `json:"months"`
}

type FinanceService interface {
	Summary(ctx context.Context) (*FinanceSummary, error)
}
