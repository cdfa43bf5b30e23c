package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/adapter/http/mapper"
	"github.com/mariepimienta/task-app/internal/adapter/http/middleware"
	"github.com/mariepimienta/task-app/internal/adapter/http/validation"
	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
	"github.com/mariepimienta/task-app/pkg/apierrors"
)

type TaskHandler struct {
	planner ports.PlannerService
}

func NewTaskHandler(planner ports.PlannerService) *TaskHandler {
	return &TaskHandler{planner: planner}
}

// ListWeekTasks returns one week's tasks as sorted roots with nested
// children. The week query parameter may be the template sentinel.
func (h *TaskHandler) ListWeekTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	week := c.Query("week")
	if !validation.ValidWeekKey(week) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidWeek, lang),
		)
		return
	}

	tasks, err := h.planner.TasksForWeek(c.Request.Context(), week)
	if err != nil {
		zap.L().Error("failed to list week tasks", zap.String("week", week), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskTree(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildAddTaskInput(req)
	if err != nil {
		msg := apierrors.MsgInvalidTaskPayload
		if errors.Is(err, validation.ErrInvalidWeekKey) {
			msg = apierrors.MsgInvalidWeek
		}
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msg, lang))
		return
	}

	task, err := h.planner.AddTask(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParentTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgParentNotFound, lang),
			)
		case errors.Is(err, domain.ErrParentTaskNotRoot):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgParentNotRoot, lang),
			)
		default:
			zap.L().Error("failed to create task", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if taskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	update, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		msg := apierrors.MsgInvalidTaskPayload
		if errors.Is(err, validation.ErrInvalidWeekKey) {
			msg = apierrors.MsgInvalidWeek
		}
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msg, lang))
		return
	}

	task, err := h.planner.UpdateTask(c.Request.Context(), taskID, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrParentTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgParentNotFound, lang),
			)
		case errors.Is(err, domain.ErrParentTaskNotRoot):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgParentNotRoot, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	task, err := h.planner.ToggleTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to toggle task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// DeleteTask removes a task and its children. Deleting an unknown id
// succeeds; the collection is simply unchanged.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if err := h.planner.DeleteTask(c.Request.Context(), taskID); err != nil {
		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.planner.MoveTask(c.Request.Context(), ports.MoveTaskInput{
		TaskID:      taskID,
		DayOfWeek:   domain.DayOfWeek(req.DayOfWeek),
		TimeOfDay:   domain.TimeOfDay(req.TimeOfDay),
		TargetIndex: req.TargetIndex,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to move task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailMoveTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// ReorderBucket renumbers one day/half-day bucket to the given root
// task id sequence.
func (h *TaskHandler) ReorderBucket(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReorderBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if !validation.ValidWeekKey(req.WeekStartDate) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidWeek, lang),
		)
		return
	}

	err := h.planner.ReorderBucket(c.Request.Context(), ports.ReorderBucketInput{
		WeekStartDate: req.WeekStartDate,
		DayOfWeek:     domain.DayOfWeek(req.DayOfWeek),
		TimeOfDay:     domain.TimeOfDay(req.TimeOfDay),
		OrderedIDs:    req.TaskIDs,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to reorder bucket", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReorderTasks, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// LoadSampleData replaces the whole collection with the starter plan.
func (h *TaskHandler) LoadSampleData(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.planner.LoadSampleData(c.Request.Context()); err != nil {
		zap.L().Error("failed to load sample data", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSampleData, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
