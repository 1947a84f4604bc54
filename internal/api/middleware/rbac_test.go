package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

func runAuthorize(t *testing.T, p Permission, identity *domain.Identity) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}

	called := false
	handler := Authorize(p)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthorize_NoIdentityIs401(t *testing.T) {
	rec, called := runAuthorize(t, PermUsersManage, nil)
	if called {
		t.Fatalf("handler should not run without identity")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthorize_DisallowedRoleIs403(t *testing.T) {
	identity := &domain.Identity{ID: 1, Role: domain.RoleSales}

	rec, called := runAuthorize(t, PermUsersManage, identity)
	if called {
		t.Fatalf("handler should not run for a disallowed role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthorize_AllowedRolePasses(t *testing.T) {
	identity := &domain.Identity{ID: 1, Role: domain.RoleSales}

	rec, called := runAuthorize(t, PermCustomersWrite, identity)
	if !called {
		t.Fatalf("handler should run for an allowed role")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPolicyTable(t *testing.T) {
	cases := []struct {
		perm Permission
		role string
		want bool
	}{
		{PermUsersManage, domain.RoleAdmin, true},
		{PermUsersManage, domain.RoleManager, false},
		{PermFinanceView, domain.RoleAccountant, true},
		{PermFinanceView, domain.RoleInstructor, false},
		{PermPaymentsManage, domain.RoleAdmin, true},
		{PermPaymentsManage, domain.RoleSales, false},
		{PermCustomersRead, domain.RoleMarketing, true},
		{PermTrainingsWrite, domain.RoleInstructor, true},
		{PermTrainingsWrite, domain.RoleSales, false},
		{PermCalendarRead, domain.RoleAccountant, true},
	}

	for _, tc := range cases {
		if got := Allowed(tc.perm, tc.role); got != tc.want {
			t.Errorf("Allowed(%s, %s) = %v, want %v", tc.perm, tc.role, got, tc.want)
		}
	}
}

func TestPolicyCoversEveryPermission(t *testing.T) {
	perms := []Permission{
		PermUsersManage, PermCustomersRead, PermCustomersWrite,
		PermTrainingsRead, PermTrainingsWrite, PermTasksRead, PermTasksWrite,
		PermPaymentsManage, PermFinanceView, PermCalendarRead,
	}
	for _, p := range perms {
		if len(policy[p]) == 0 {
			t.Errorf("permission %s has an empty allowlist", p)
		}
	}
}
