package domain

import (
	"errors"
	"time"
)

var ErrTrainingNotFound = errors.New("training not found")

// Training is a scheduled course session or workout slot.
type Training struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	InstructorID    int64     `json:"instructor_id,omitempty"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Capacity        int       `json:"capacity,omitempty"`
	Price           float64   `json:"price,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
