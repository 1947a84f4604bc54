package ports

import (
	"context"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// TaskInput carries the writable fields of a task. Done is a pointer so an
// update can leave the stored value alone when the field is absent.
type TaskInput struct {
	Title            string
	DueDate          *time.Time
	Done             *bool
	AssignedToUserID int64
}

// ListTasksInput describes a task list query. AssignedTo is the raw query
// value: "", "me", or a numeric user id.
type ListTasksInput struct {
	AssignedTo string
	Done       *bool
}

type TaskService interface {
	Create(ctx context.Context, in TaskInput) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, caller domain.Identity, in ListTasksInput) ([]domain.Task, error)
	Update(ctx context.Context, id int64, in TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
