package mapper

import (
	"time"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/core/domain"
)

func ToCalendarEventItems(events []domain.CalendarEvent) []dto.CalendarEventItem {
	items := make([]dto.CalendarEventItem, 0, len(events))
	for _, e := range events {
		items = append(items, dto.CalendarEventItem{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: e.StartTime.Format(time.RFC3339),
			EndTime:   e.EndTime.Format(time.RFC3339),
			Source:    string(e.Source),
			Visible:   e.Visible,
		})
	}
	return items
}
