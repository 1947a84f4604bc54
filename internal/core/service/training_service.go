package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

// TrainingService implements training-session management and the calendar view.
type TrainingService struct {
	repo ports.TrainingRepository
}

func NewTrainingService(repo ports.TrainingRepository) *TrainingService {
	return &TrainingService{repo: repo}
}

func (s *TrainingService) Create(ctx context.Context, in ports.TrainingInput) (*domain.Training, error) {
	now := time.Now().UTC()
	training := &domain.Training{
		Title:           strings.TrimSpace(in.Title),
		InstructorID:    in.InstructorID,
		StartsAt:        in.StartsAt.UTC(),
		DurationMinutes: in.DurationMinutes,
		Capacity:        in.Capacity,
		Price:           in.Price,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return s.repo.Create(ctx, training)
}

func (s *TrainingService) Get(ctx context.Context, id int64) (*domain.Training, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TrainingService) List(ctx context.Context, filter ports.TrainingFilter) ([]domain.Training, error) {
	return s.repo.List(ctx, filter)
}

func (s *TrainingService) Update(ctx context.Context, id int64, in ports.TrainingInput) (*domain.Training, error) {
	training, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		training.Title = strings.TrimSpace(in.Title)
	}
	if in.InstructorID != 0 {
		training.InstructorID = in.InstructorID
	}
	if !in.StartsAt.IsZero() {
		training.StartsAt = in.StartsAt.UTC()
	}
	if in.DurationMinutes != 0 {
		training.DurationMinutes = in.DurationMinutes
	}
	if in.Capacity != 0 {
		training.Capacity = in.Capacity
	}
	if in.Price != 0 {
		training.Price = in.Price
	}
	training.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (s *TrainingService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// MonthSchedule groups the month's trainings by calendar day (UTC).
func (s *TrainingService) MonthSchedule(ctx context.Context, year int, month time.Month) ([]ports.CalendarDay, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	trainings, err := s.repo.List(ctx, ports.TrainingFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]domain.Training)
	for _, t := range trainings {
		key := t.StartsAt.UTC().Format("2006-01-02")
		byDay[key] = append(byDay[key], t)
	}

	days := make([]ports.CalendarDay, 0, len(byDay))
	for date, list := range byDay {
		sort.Slice(list, func(i, j int) bool { return list[i].StartsAt.Before(list[j].StartsAt) })
		days = append(days, ports.CalendarDay{Date: date, Trainings: list})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days, nil
}
