package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// Permission names every role-gated operation group.
type Permission string

const (
	PermUsersManage    Permission = "users:manage"
	PermCustomersRead  Permission = "customers:read"
	PermCustomersWrite Permission = "customers:write"
	PermTrainingsRead  Permission = "trainings:read"
	PermTrainingsWrite Permission = "trainings:write"
	PermTasksRead      Permission = "tasks:read"
	PermTasksWrite     Permission = "tasks:write"
	PermPaymentsManage Permission = "payments:manage"
	PermFinanceView    Permission = "finance:view"
	PermCalendarRead   Permission = "calendar:read"
)

var allRoles = domain.Roles

// policy maps each permission to its role allowlist. All route-level gating
// goes through this one table; no per-route closures.
var policy = map[Permission][]string{
	PermUsersManage:    {domain.RoleAdmin},
	PermCustomersRead:  allRoles,
	PermCustomersWrite: {domain.RoleAdmin, domain.RoleManager, domain.RoleSales, domain.RoleMarketing},
	PermTrainingsRead:  allRoles,
	PermTrainingsWrite: {domain.RoleAdmin, domain.RoleManager, domain.RoleInstructor},
	PermTasksRead:      allRoles,
	PermTasksWrite:     allRoles,
	PermPaymentsManage: {domain.RoleAdmin, domain.RoleAccountant},
	PermFinanceView:    {domain.RoleAdmin, domain.RoleAccountant},
	PermCalendarRead:   allRoles,
}

// Allowed reports whether role may exercise the permission.
func Allowed(p Permission, role string) bool {
	for _, r := range policy[p] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize admits callers whose role is allowlisted for the permission.
// A missing identity is a 401, a disallowed role a 403; the two are distinct.
func Authorize(p Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !Allowed(p, identity.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
