package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	dto "annotation-registry.com/annotation-registry/internal/data_models"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
	"annotation-registry.com/annotation-registry/internal/http/validators"
	"annotation-registry.com/annotation-registry/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateAnnotation(c echo.Context) error {
	var req dto.CreateAnnotationRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(c, apperrors.ErrInvalidJSON)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), &req)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return toHTTPError(c, err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListPending(c echo.Context) error {
	tasks, err := h.taskService.ListPending(c.Request().Context())
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// toHTTPError maps a registry error to its status. Server-side failures are
// logged and reported without internal detail.
func toHTTPError(c echo.Context, err error) *echo.HTTPError {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().Err(err).Msg("request failed")
		return echo.NewHTTPError(status, http.StatusText(status))
	}
	return echo.NewHTTPError(status, err.Error())
}
