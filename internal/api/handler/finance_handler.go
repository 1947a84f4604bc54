package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/ports"
)

type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// Summary returns total income and the per-month breakdown.
//
// @Summary      Finance summary
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FinanceSummary
// @Failure      403  {object}  map[string]string
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
