package service

import (
	"context"
	"sort"

	"github.com/eladcrm/crm-api/internal/core/ports"
)

// FinanceService aggregates payments into income figures.
type FinanceService struct {
	payments ports.PaymentRepository
}

func NewFinanceService(payments ports.PaymentRepository) *FinanceService {
	return &FinanceService{payments: payments}
}

// Summary sums all recorded payments, broken down per calendar month (UTC).
func (s *FinanceService) Summary(ctx context.Context) (*ports.FinanceSummary, error) {
	payments, err := s.payments.List(ctx, ports.PaymentFilter{})
	if err != nil {
		return nil, err
	}

	summary := &ports.FinanceSummary{PaymentCount: len(payments)}
	byMonth := make(map[string]*ports.MonthIncome)

	for _, p := range payments {
		summary.TotalIncome += p.Amount

		key := p.PaidAt.UTC().Format("2006-01")
		row, ok := byMonth[key]
		if !ok {
			row = &ports.MonthIncome{Month: key}
			byMonth[key] = row
		}
		row.Income += p.Amount
		row.Count++
	}

	summary.Months = make([]ports.MonthIncome, 0, len(byMonth))
	for _, row := range byMonth {
		summary.Months = append(summary.Months, *row)
	}
	sort.Slice(summary.Months, func(i, j int) bool {
		return summary.Months[i].Month < summary.Months[j].Month
	})

	return summary, nil
}
