package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers  []domain.Customer
	lastFilter ports.CustomerFilter
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	created := *c
	created.ID = int64(len(r.customers) + 1)
	r.customers = append(r.customers, created)
	return &created, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context, filter ports.CustomerFilter) ([]domain.Customer, error) {
	r.lastFilter = filter
	var out []domain.Customer
	for _, c := range r.customers {
		if filter.AssignedTo != nil && c.AssignedToUserID != *filter.AssignedTo {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	for i := range r.customers {
		if r.customers[i].ID == c.ID {
			r.customers[i] = *c
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func salesCaller() domain.Identity {
	return domain.Identity{ID: 7, Name: "Rep", Email: "rep@example.com", Role: domain.RoleSales}
}

func TestCustomerService_Create_DefaultsToLead(t *testing.T) {
	svc := NewCustomerService(&stubCustomerRepo{})

	customer, err := svc.Create(context.Background(), ports.CustomerInput{FullName: "Dana Levi"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if customer.Status != domain.StatusLead {
		t.Fatalf("expected LEAD default, got %s", customer.Status)
	}
}

func TestCustomerService_Create_InvalidStatus(t *testing.T) {
	svc := NewCustomerService(&stubCustomerRepo{})

	_, err := svc.Create(context.Background(), ports.CustomerInput{FullName: "Dana", Status: "VIP"})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCustomerService_List_AssignedToMe(t *testing.T) {
	repo := &stubCustomerRepo{customers: []domain.Customer{
		{ID: 1, FullName: "Mine", Status: domain.StatusActive, AssignedToUserID: 7},
		{ID: 2, FullName: "Theirs", Status: domain.StatusActive, AssignedToUserID: 8},
	}}
	svc := NewCustomerService(repo)

	customers, err := svc.List(context.Background(), salesCaller(), ports.ListCustomersInput{AssignedTo: "me"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(customers) != 1 || customers[0].FullName != "Mine" {
		t.Fatalf("expected only the caller's row, got %+v", customers)
	}
}

func TestCustomerService_List_ExplicitOwnerNeedsSupervisoryRole(t *testing.T) {
	svc := NewCustomerService(&stubCustomerRepo{})

	if _, err := svc.List(context.Background(), salesCaller(), ports.ListCustomersInput{AssignedTo: "8"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("SALES asking for another owner: expected ErrForbidden, got %v", err)
	}

	manager := domain.Identity{ID: 1, Role: domain.RoleManager}
	if _, err := svc.List(context.Background(), manager, ports.ListCustomersInput{AssignedTo: "8"}); err != nil {
		t.Fatalf("MANAGER asking for another owner: unexpected error %v", err)
	}
}

func TestCustomerService_List_BadAssignedToValue(t *testing.T) {
	svc := NewCustomerService(&stubCustomerRepo{})

	if _, err := svc.List(context.Background(), salesCaller(), ports.ListCustomersInput{AssignedTo: "soon"}); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestCustomerService_List_StatusFilter(t *testing.T) {
	repo := &stubCustomerRepo{customers: []domain.Customer{
		{ID: 1, FullName: "Lead", Status: domain.StatusLead},
		{ID: 2, FullName: "Client", Status: domain.StatusActive},
	}}
	svc := NewCustomerService(repo)

	leads, err := svc.List(context.Background(), salesCaller(), ports.ListCustomersInput{Status: domain.StatusLead})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 1 || leads[0].FullName != "Lead" {
		t.Fatalf("expected leads only, got %+v", leads)
	}

	if _, err := svc.List(context.Background(), salesCaller(), ports.ListCustomersInput{Status: "HOT"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCustomerService_Update_PartialFields(t *testing.T) {
	repo := &stubCustomerRepo{customers: []domain.Customer{
		{ID: 1, FullName: "Dana Levi", Phone: "050-000", Status: domain.StatusLead},
	}}
	svc := NewCustomerService(repo)

	updated, err := svc.Update(context.Background(), 1, ports.CustomerInput{Status: domain.StatusActive})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusActive {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if updated.FullName != "Dana Levi" || updated.Phone != "050-000" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}
