package service

import (
	"strconv"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// resolveAssignedTo turns the raw assignedTo query value into an owner id
// filter. "me" resolves to the caller for anyone; an explicit id is reserved
// for supervisory roles so one rep cannot browse another's book.
func resolveAssignedTo(caller domain.Identity, raw string) (*int64, error) {
	switch raw {
	case "":
		return nil, nil
	case "me":
		id := caller.ID
		return &id, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidFilter
	}
	if caller.Role != domain.RoleAdmin && caller.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}
	return &id, nil
}
