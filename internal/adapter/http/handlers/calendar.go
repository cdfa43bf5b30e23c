package handlers

import (
	"errors"
	"net/http"

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

type CalendarHandler struct {
	calendar ports.CalendarService
}

func NewCalendarHandler(calendar ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// ListWeekEvents returns the visible events of one week, optionally
// narrowed to a day/half-day bucket.
func (h *CalendarHandler) ListWeekEvents(c *gin.Context) {
	lang := middleware.GetLang(c)

	week := c.Query("week")
	events, err := h.calendar.EventsForWeek(c.Request.Context(), week)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWeekStart) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidWeek, lang),
			)
			return
		}
		zap.L().Error("failed to list calendar events", zap.String("week", week), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCalendar, lang),
		)
		return
	}

	day := c.Query("day")
	timeOfDay := c.Query("time")
	if day != "" || timeOfDay != "" {
		if !domain.ValidDayOfWeek(day) || !domain.ValidTimeOfDay(timeOfDay) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCalendar, lang),
			)
			return
		}
		events, err = domain.EventsForDayAndTime(events, week, domain.DayOfWeek(day), domain.TimeOfDay(timeOfDay))
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidWeek, lang),
			)
			return
		}
	}

	c.JSON(http.StatusOK, mapper.ToCalendarEventItems(events))
}

// ReplaceEvents overwrites the stored event collection with the payload
// supplied by the calendar integration.
func (h *CalendarHandler) ReplaceEvents(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReplaceCalendarEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCalendar, lang),
		)
		return
	}

	events, err := validation.BuildCalendarEvents(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCalendar, lang),
		)
		return
	}

	if err := h.calendar.ReplaceEvents(c.Request.Context(), events); err != nil {
		zap.L().Error("failed to replace calendar events", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCalendar, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
