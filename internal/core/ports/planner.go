package ports

import (
	"context"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

// AddTaskInput carries the fields of a user-created task. WeekStartDate
// may be a Monday key or the template sentinel.
type AddTaskInput struct {
	Title         string
	DayOfWeek     domain.DayOfWeek
	TimeOfDay     domain.TimeOfDay
	ParentTaskID  string
	Recurring     bool
	WeekStartDate string
}

// MoveTaskInput targets a destination bucket for a cross-bucket drag.
// TargetIndex nil appends at the end of the destination bucket.
type MoveTaskInput struct {
	TaskID      string
	DayOfWeek   domain.DayOfWeek
	TimeOfDay   domain.TimeOfDay
	TargetIndex *int
}

// ReorderBucketInput renumbers one day/half-day bucket of root tasks to
// the given id sequence.
type ReorderBucketInput struct {
	WeekStartDate string
	DayOfWeek     domain.DayOfWeek
	TimeOfDay     domain.TimeOfDay
	OrderedIDs    []string
}

// PlannerService is the application surface the HTTP adapter consumes.
type PlannerService interface {
	TasksForWeek(ctx context.Context, weekStartDate string) ([]domain.Task, error)
	AddTask(ctx context.Context, input AddTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate) (domain.Task, error)
	ToggleTask(ctx context.Context, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	MoveTask(ctx context.Context, input MoveTaskInput) (domain.Task, error)
	ReorderBucket(ctx context.Context, input ReorderBucketInput) error

	AvailableWeeks(ctx context.Context) ([]string, error)
	CreateWeek(ctx context.Context, weekStartDate string) ([]domain.Task, error)
	CreateNextWeek(ctx context.Context) (string, error)
	EnsureCurrentWeek(ctx context.Context) (string, error)
	DeleteWeek(ctx context.Context, weekStartDate string) error
	PropagateTemplate(ctx context.Context) error
	LoadSampleData(ctx context.Context) error
}

// SettingsService reads and merges the app settings blob.
type SettingsService interface {
	Settings(ctx context.Context) (domain.AppSettings, error)
	UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.AppSettings, error)
}

// CalendarService exposes the read-only calendar overlay.
type CalendarService interface {
	EventsForWeek(ctx context.Context, weekStartDate string) ([]domain.CalendarEvent, error)
	ReplaceEvents(ctx context.Context, events []domain.CalendarEvent) error
}
