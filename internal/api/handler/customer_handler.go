package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerRequest struct {
	FullName         string `json:"full_name" validate:"required,min=2"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=LEAD ACTIVE CHURNED"`
	Notes            string `json:"notes,omitempty"`
	AssignedToUserID int64  `json:"assigned_to_user_id,omitempty"`
}

type updateCustomerRequest struct {
	FullName         string `json:"full_name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=LEAD ACTIVE CHURNED"`
	Notes            string `json:"notes,omitempty"`
	AssignedToUserID int64  `json:"assigned_to_user_id,omitempty"`
}

type customerResponse struct {
	Customer *domain.Customer `json:"customer"`
}

type customerListResponse struct {
	Customers []domain.Customer `json:"customers"`
}

// Create registers a customer or lead.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      customerRequest  true  "Customer"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Create(c.Request().Context(), ports.CustomerInput{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		Status:           req.Status,
		Notes:            req.Notes,
		AssignedToUserID: req.AssignedToUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customerResponse{Customer: customer})
}

// List returns customers, optionally narrowed by status and ownership.
// assignedTo accepts "me" for any caller; a numeric id needs ADMIN or MANAGER.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "LEAD, ACTIVE or CHURNED"
// @Param        assignedTo  query     string  false  "'me' or a user id"
// @Success      200         {object}  customerListResponse
// @Failure      403         {object}  map[string]string
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	customers, err := h.service.List(c.Request().Context(), identity, ports.ListCustomersInput{
		AssignedTo: c.QueryParam("assignedTo"),
		Status:     c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerListResponse{Customers: customers})
}

// Get returns one customer.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Customer id"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerResponse{Customer: customer})
}

// Update changes a customer record.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Changes"
// @Success      200   {object}  customerResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Update(c.Request().Context(), id, ports.CustomerInput{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		Status:           req.Status,
		Notes:            req.Notes,
		AssignedToUserID: req.AssignedToUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerResponse{Customer: customer})
}

// Delete removes a customer.
//
// @Summary      Delete a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        id  path  int  true  "Customer id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
