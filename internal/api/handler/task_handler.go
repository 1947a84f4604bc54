package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	Title            string     `json:"title" validate:"required,min=2"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Done             *bool      `json:"done,omitempty"`
	AssignedToUserID int64      `json:"assigned_to_user_id,omitempty"`
}

type taskResponse struct {
	Task *domain.Task `json:"task"`
}

type taskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// Create adds a task.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), ports.TaskInput{
		Title:            req.Title,
		DueDate:          req.DueDate,
		Done:             req.Done,
		AssignedToUserID: req.AssignedToUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, taskResponse{Task: task})
}

// List returns tasks, optionally narrowed by done state and ownership.
// assignedTo accepts "me" for any caller; a numeric id needs ADMIN or MANAGER.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        done        query     bool    false  "Completion filter"
// @Param        assignedTo  query     string  false  "'me' or a user id"
// @Success      200         {object}  taskListResponse
// @Failure      403         {object}  map[string]string
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	in := ports.ListTasksInput{AssignedTo: c.QueryParam("assignedTo")}
	if raw := c.QueryParam("done"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid done")
		}
		in.Done = &done
	}

	tasks, err := h.service.List(c.Request().Context(), identity, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskListResponse{Tasks: tasks})
}

// Get returns one task.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	task, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskResponse{Task: task})
}

// Update changes a task, including toggling done.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Task id"
// @Param        body  body      taskRequest  true  "Changes"
// @Success      200   {object}  taskResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	task, err := h.service.Update(c.Request().Context(), id, ports.TaskInput{
		Title:            req.Title,
		DueDate:          req.DueDate,
		Done:             req.Done,
		AssignedToUserID: req.AssignedToUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskResponse{Task: task})
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  int  true  "Task id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
