package ports

import (
	"context"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

// Storage is the persistence port. Every call reads or replaces a whole
// collection; there are no partial writes. Concrete backends live in
// internal/adapter/storage.
type Storage interface {
	GetTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error
	GetSettings(ctx context.Context) (domain.AppSettings, error)
	SaveSettings(ctx context.Context, settings domain.AppSettings) error
	GetCalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error)
	SaveCalendarEvents(ctx context.Context, events []domain.CalendarEvent) error
}
