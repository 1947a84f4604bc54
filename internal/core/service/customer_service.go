package service

import (
	"context"
	"strings"
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

// CustomerService implements customer and lead management.
type CustomerService struct {
	repo ports.CustomerRepository
}

func NewCustomerService(repo ports.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusLead
	}
	if !domain.ValidCustomerStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		FullName:         strings.TrimSpace(in.FullName),
		Phone:            in.Phone,
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Status:           status,
		Notes:            in.Notes,
		AssignedToUserID: in.AssignedToUserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return s.repo.Create(ctx, customer)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, caller domain.Identity, in ports.ListCustomersInput) ([]domain.Customer, error) {
	assignedTo, err := resolveAssignedTo(caller, in.AssignedTo)
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !domain.ValidCustomerStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}

	return s.repo.List(ctx, ports.CustomerFilter{AssignedTo: assignedTo, Status: in.Status})
}

func (s *CustomerService) Update(ctx context.Context, id int64, in ports.CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		if !domain.ValidCustomerStatus(in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		customer.Status = in.Status
	}
	if in.FullName != "" {
		customer.FullName = strings.TrimSpace(in.FullName)
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Email != "" {
		customer.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Notes != "" {
		customer.Notes = in.Notes
	}
	if in.AssignedToUserID != 0 {
		customer.AssignedToUserID = in.AssignedToUserID
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
