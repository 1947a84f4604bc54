package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type TrainingHandler struct {
	service ports.TrainingService
}

func NewTrainingHandler(service ports.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

type trainingRequest struct {
	Title           string    `json:"title" validate:"required,min=2"`
	InstructorID    int64     `json:"instructor_id,omitempty"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Capacity        int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Price           float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
}

type updateTrainingRequest struct {
	Title           string    `json:"title,omitempty"`
	InstructorID    int64     `json:"instructor_id,omitempty"`
	StartsAt        time.Time `json:"starts_at,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	Capacity        int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Price           float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
}

type trainingResponse struct {
	Training *domain.Training `json:"training"`
}

type trainingListResponse struct {
	Trainings []domain.Training `json:"trainings"`
}

type calendarResponse struct {
	Month string             `json:"month"`
	Days  []ports.CalendarDay `json:"days"`
}

// Create schedules a training session.
//
// @Summary      Create a training
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      trainingRequest  true  "Training"
// @Success      201   {object}  trainingResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/trainings [post]
func (h *TrainingHandler) Create(c echo.Context) error {
	var req trainingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	training, err := h.service.Create(c.Request().Context(), ports.TrainingInput{
		Title:           req.Title,
		InstructorID:    req.InstructorID,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		Price:           req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trainingResponse{Training: training})
}

// List returns trainings, optionally bounded by from/to (RFC 3339).
//
// @Summary      List trainings
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Start of window (RFC 3339)"
// @Param        to    query     string  false  "End of window (RFC 3339)"
// @Success      200   {object}  trainingListResponse
// @Router       /api/trainings [get]
func (h *TrainingHandler) List(c echo.Context) error {
	var filter ports.TrainingFilter
	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from")
		}
		filter.From = t
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid to")
		}
		filter.To = t
	}

	trainings, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainingListResponse{Trainings: trainings})
}

// Get returns one training.
//
// @Summary      Get a training
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Training id"
// @Success      200  {object}  trainingResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/trainings/{id} [get]
func (h *TrainingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	training, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainingResponse{Training: training})
}

// Update changes a training session.
//
// @Summary      Update a training
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Training id"
// @Param        body  body      updateTrainingRequest  true  "Changes"
// @Success      200   {object}  trainingResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/trainings/{id} [put]
func (h *TrainingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTrainingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	training, err := h.service.Update(c.Request().Context(), id, ports.TrainingInput{
		Title:           req.Title,
		InstructorID:    req.InstructorID,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		Price:           req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainingResponse{Training: training})
}

// Delete removes a training session.
//
// @Summary      Delete a training
// @Tags         trainings
// @Security     BearerAuth
// @Param        id  path  int  true  "Training id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/trainings/{id} [delete]
func (h *TrainingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Calendar returns the month's trainings grouped by day.
//
// @Summary      Month calendar
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        month  query     string  true  "Month as YYYY-MM"
// @Success      200    {object}  calendarResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/calendar [get]
func (h *TrainingHandler) Calendar(c echo.Context) error {
	raw := c.QueryParam("month")
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid month, expected YYYY-MM")
	}

	days, err := h.service.MonthSchedule(c.Request().Context(), month.Year(), month.Month())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calendarResponse{Month: raw, Days: days})
}
