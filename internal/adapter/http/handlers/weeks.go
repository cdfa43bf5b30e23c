package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/adapter/http/middleware"
	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
	"github.com/mariepimienta/task-app/pkg/apierrors"
)

type WeekHandler struct {
	planner ports.PlannerService
}

func NewWeekHandler(planner ports.PlannerService) *WeekHandler {
	return &WeekHandler{planner: planner}
}

// ListWeeks returns the ascending week-start keys that have
// materialised tasks. The template sentinel is never listed.
func (h *WeekHandler) ListWeeks(c *gin.Context) {
	lang := middleware.GetLang(c)

	weeks, err := h.planner.AvailableWeeks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list weeks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListWeeks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.WeekList{Weeks: weeks})
}

// EnsureCurrentWeek materialises the current week if it is missing and
// returns its key either way.
func (h *WeekHandler) EnsureCurrentWeek(c *gin.Context) {
	lang := middleware.GetLang(c)

	week, err := h.planner.EnsureCurrentWeek(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to ensure current week", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateWeek, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.WeekCreated{WeekStartDate: week})
}

// CreateNextWeek materialises the successor of the latest existing week.
func (h *WeekHandler) CreateNextWeek(c *gin.Context) {
	lang := middleware.GetLang(c)

	week, err := h.planner.CreateNextWeek(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to create next week", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateWeek, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.WeekCreated{WeekStartDate: week})
}

// CreateWeek materialises an arbitrary week from the template, used
// when the user navigates to a week with no tasks yet.
func (h *WeekHandler) CreateWeek(c *gin.Context) {
	lang := middleware.GetLang(c)

	week := c.Param("week")
	if _, err := h.planner.CreateWeek(c.Request.Context(), week); err != nil {
		if errors.Is(err, domain.ErrInvalidWeekStart) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidWeek, lang),
			)
			return
		}
		zap.L().Error("failed to create week", zap.String("week", week), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateWeek, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.WeekCreated{WeekStartDate: week})
}

// DeleteWeek removes every task in a week. The template is refused.
func (h *WeekHandler) DeleteWeek(c *gin.Context) {
	lang := middleware.GetLang(c)

	week := c.Param("week")
	if err := h.planner.DeleteWeek(c.Request.Context(), week); err != nil {
		if errors.Is(err, domain.ErrTemplateImmutable) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgTemplateImmutable, lang),
			)
			return
		}
		zap.L().Error("failed to delete week", zap.String("week", week), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteWeek, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// PropagateTemplate reconciles every week against the template: past
// weeks untouched, the current week regenerated, future
// materialisations discarded.
func (h *WeekHandler) PropagateTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.planner.PropagateTemplate(c.Request.Context()); err != nil {
		zap.L().Error("failed to propagate template", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPropagate, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
