package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/api/middleware"
	"github.com/eladcrm/crm-api/internal/core/domain"
)

// currentIdentity extracts the identity attached by the Auth middleware.
// Its absence means the route was wired without the gate; reject with 401.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return identity, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
