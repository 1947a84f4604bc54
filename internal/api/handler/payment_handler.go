package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type paymentRequest struct {
	CustomerID int64     `json:"customer_id" validate:"required,gt=0"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	PaidAt     time.Time `json:"paid_at,omitempty"`
	Method     string    `json:"method,omitempty"`
	Note       string    `json:"note,omitempty"`
}

type paymentResponse struct {
	Payment *domain.Payment `json:"payment"`
}

type paymentListResponse struct {
	Payments []domain.Payment `json:"payments"`
}

// Create records a payment.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      201   {object}  paymentResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Create(c.Request().Context(), ports.PaymentInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		PaidAt:     req.PaidAt,
		Method:     req.Method,
		Note:       req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, paymentResponse{Payment: payment})
}

// List returns payments, optionally narrowed by customer.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  query     int  false  "Customer id"
// @Success      200         {object}  paymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	var filter ports.PaymentFilter
	if raw := c.QueryParam("customerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid customerId")
		}
		filter.CustomerID = id
	}

	payments, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentListResponse{Payments: payments})
}

// Delete removes a payment record.
//
// @Summary      Delete a payment
// @Tags         payments
// @Security     BearerAuth
// @Param        id  path  int  true  "Payment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
