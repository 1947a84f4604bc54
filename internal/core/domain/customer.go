package domain

import (
	"errors"
	"time"
)

// Customer lifecycle statuses. A lead is a customer with StatusLead.
const (
	StatusLead    = "LEAD"
	StatusActive  = "ACTIVE"
	StatusChurned = "CHURNED"
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrInvalidStatus = errors.New("invalid customer status")

// ValidCustomerStatus reports whether status is a recognised lifecycle value.
func ValidCustomerStatus(status string) bool {
	switch status {
	case StatusLead, StatusActive, StatusChurned:
		return true
	}
	return false
}

// Customer is a client or lead of the business. AssignedToUserID is a weak
// reference to the handling user, used only for access filtering.
type Customer struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	AssignedToUserID int64     `json:"assigned_to_user_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
