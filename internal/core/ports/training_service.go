package ports

import (
	"context"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// TrainingInput carries the writable fields of a training session.
type TrainingInput struct {
	Title           string
	InstructorID    int64
	StartsAt        time.Time
	DurationMinutes int
	Capacity        int
	Price           float64
}

// CalendarDay groups the trainings that start on one calendar date.
type CalendarDay struct {
	Date      string            `json:"date"`
	Trainings []domain.Training `json:"trainings"`
}

type TrainingService interface {
	Create(ctx context.Context, in TrainingInput) (*domain.Training, error)
	Get(ctx context.Context, id int64) (*domain.Training, error)
	List(ctx context.Context, filter TrainingFilter) ([]domain.Training, error)
	Update(ctx context.Context, id int64, in TrainingInput) (*domain.Training, error)
	Delete(ctx context.Context, id int64) error
	// MonthSchedule returns the month's trainings grouped by day, ordered by
	// date. Days without trainings are omitted.
	MonthSchedule(ctx context.Context, year int, month time.Month) ([]CalendarDay, error)
}
