package service

import (
	"context"
	"strings"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

// TaskService implements task management with ownership filtering.
type TaskService struct {
	repo ports.TaskRepository
}

func NewTaskService(repo ports.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, in ports.TaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		Title:            strings.TrimSpace(in.Title),
		DueDate:          in.DueDate,
		AssignedToUserID: in.AssignedToUserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.Done != nil {
		task.Done = *in.Done
	}
	return s.repo.Create(ctx, task)
}

func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, caller domain.Identity, in ports.ListTasksInput) ([]domain.Task, error) {
	assignedTo, err := resolveAssignedTo(caller, in.AssignedTo)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ports.TaskFilter{AssignedTo: assignedTo, Done: in.Done})
}

func (s *TaskService) Update(ctx context.Context, id int64, in ports.TaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		task.Title = strings.TrimSpace(in.Title)
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Done != nil {
		task.Done = *in.Done
	}
	if in.AssignedToUserID != 0 {
		task.AssignedToUserID = in.AssignedToUserID
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
