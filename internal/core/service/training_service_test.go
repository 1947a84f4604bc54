package service

import (
	"context"
	"testing"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type stubTrainingRepo struct {
	trainings []domain.Training
}

func (r *stubTrainingRepo) Create(_ context.Context, tr *domain.Training) (*domain.Training, error) {
	created := *tr
	created.ID = int64(len(r.trainings) + 1)
	r.trainings = append(r.trainings, created)
	return &created, nil
}

func (r *stubTrainingRepo) FindByID(_ context.Context, id int64) (*domain.Training, error) {
	for _, tr := range r.trainings {
		if tr.ID == id {
			clone := tr
			return &clone, nil
		}
	}
	return nil, domain.ErrTrainingNotFound
}

func (r *stubTrainingRepo) List(_ context.Context, filter ports.TrainingFilter) ([]domain.Training, error) {
	var out []domain.Training
	for _, tr := range r.trainings {
		if !filter.From.IsZero() && tr.StartsAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !tr.StartsAt.Before(filter.To) {
			continue
		}
		out = append(out, tr)
	}
	return out, nil
}

func (r *stubTrainingRepo) Update(_ context.Context, tr *domain.Training) error {
	for i := range r.trainings {
		if r.trainings[i].ID == tr.ID {
			r.trainings[i] = *tr
			return nil
		}
	}
	return domain.ErrTrainingNotFound
}

func (r *stubTrainingRepo) Delete(_ context.Context, id int64) error {
	for i := range r.trainings {
		if r.trainings[i].ID == id {
			r.trainings = append(r.trainings[:i], r.trainings[i+1:]...)
			return nil
		}
	}
	return domain.ErrTrainingNotFound
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestTrainingService_MonthSchedule(t *testing.T) {
	repo := &stubTrainingRepo{trainings: []domain.Training{
		{ID: 1, Title: "Evening run", StartsAt: at(2025, time.May, 12, 18)},
		{ID: 2, Title: "Morning swim", StartsAt: at(2025, time.May, 12, 7)},
		{ID: 3, Title: "Spin class", StartsAt: at(2025, time.May, 3, 9)},
		{ID: 4, Title: "June camp", StartsAt: at(2025, time.June, 1, 9)},
	}}
	svc := NewTrainingService(repo)

	days, err := svc.MonthSchedule(context.Background(), 2025, time.May)
	if err != nil {
		t.Fatalf("month schedule failed: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %+v", days)
	}
	if days[0].Date != "2025-05-03" || days[1].Date != "2025-05-12" {
		t.Fatalf("days out of order: %s, %s", days[0].Date, days[1].Date)
	}
	if len(days[1].Trainings) != 2 {
		t.Fatalf("expected 2 trainings on the 12th, got %d", len(days[1].Trainings))
	}
	if days[1].Trainings[0].Title != "Morning swim" {
		t.Fatalf("trainings within the day out of order: %+v", days[1].Trainings)
	}
}

func TestTrainingService_MonthSchedule_EmptyMonth(t *testing.T) {
	svc := NewTrainingService(&stubTrainingRepo{})

	days, err := svc.MonthSchedule(context.Background(), 2025, time.May)
	if err != nil {
		t.Fatalf("month schedule failed: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected no days, got %+v", days)
	}
}
