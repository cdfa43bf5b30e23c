package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidWeekKey     = errors.New("invalid week start date")
)

// ValidWeekKey accepts a Monday ISO date or the template sentinel.
func ValidWeekKey(weekStartDate string) bool {
	if weekStartDate == domain.WeekTemplate {
		return true
	}
	_, err := domain.ParseWeekStart(weekStartDate)
	return err == nil
}

func BuildAddTaskInput(req dto.CreateTaskRequest) (ports.AddTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ports.AddTaskInput{}, ErrInvalidTaskPayload
	}
	if !ValidWeekKey(req.WeekStartDate) {
		return ports.AddTaskInput{}, ErrInvalidWeekKey
	}

	input := ports.AddTaskInput{
		Title:         title,
		DayOfWeek:     domain.DayOfWeek(req.DayOfWeek),
		TimeOfDay:     domain.TimeOfDay(req.TimeOfDay),
		WeekStartDate: req.WeekStartDate,
	}
	if req.Recurring != nil {
		input.Recurring = *req.Recurring
	}
	if req.ParentTaskID != nil {
		input.ParentTaskID = *req.ParentTaskID
	}
	return input, nil
}

// BuildUpdateTaskInput converts a partial update request into a domain
// update. The raw message map distinguishes absent fields from explicit
// nulls: "parent_task_id": null clears the parent.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskUpdate, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskUpdate{}, ErrInvalidTaskPayload
	}

	var update domain.TaskUpdate

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Title = &value
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Completed = req.Completed
	}

	if hasJSONField(raw, "day_of_week") {
		if req.DayOfWeek == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		value := domain.DayOfWeek(*req.DayOfWeek)
		update.DayOfWeek = &value
	}

	if hasJSONField(raw, "time_of_day") {
		if req.TimeOfDay == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		value := domain.TimeOfDay(*req.TimeOfDay)
		update.TimeOfDay = &value
	}

	if hasJSONField(raw, "recurring") {
		if req.Recurring == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Recurring = req.Recurring
	}

	if hasJSONField(raw, "weekly_recurrence") {
		if req.WeeklyRecurrence == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.WeeklyRecurrence = req.WeeklyRecurrence
	}

	if hasJSONField(raw, "parent_task_id") {
		update.ParentTaskIDSet = true
		if !isJSONNull(raw["parent_task_id"]) {
			if req.ParentTaskID == nil {
				return domain.TaskUpdate{}, ErrInvalidTaskPayload
			}
			update.ParentTaskID = req.ParentTaskID
		}
	}

	if hasJSONField(raw, "order") {
		if req.Order == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Order = req.Order
	}

	if hasJSONField(raw, "week_start_date") {
		if req.WeekStartDate == nil || !ValidWeekKey(*req.WeekStartDate) {
			return domain.TaskUpdate{}, ErrInvalidWeekKey
		}
		update.WeekStartDate = req.WeekStartDate
	}

	return update, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "day_of_week") ||
		hasJSONField(raw, "time_of_day") ||
		hasJSONField(raw, "recurring") ||
		hasJSONField(raw, "weekly_recurrence") ||
		hasJSONField(raw, "parent_task_id") ||
		hasJSONField(raw, "order") ||
		hasJSONField(raw, "week_start_date")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
