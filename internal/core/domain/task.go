package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a to-do item, optionally assigned to a user for follow-up.
type Task struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Done             bool       `json:"done"`
	AssignedToUserID int64      `json:"assigned_to_user_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
