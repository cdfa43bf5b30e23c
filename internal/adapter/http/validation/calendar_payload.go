package validation

import (
	"errors"
	"time"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/core/domain"
)

var ErrInvalidCalendarPayload = errors.New("invalid calendar payload")

// BuildCalendarEvents parses the replacement event collection. Source
// defaults to google and visible to true, matching the upstream
// integration's output.
func BuildCalendarEvents(req dto.ReplaceCalendarEventsRequest) ([]domain.CalendarEvent, error) {
	events := make([]domain.CalendarEvent, 0, len(req.Events))
	for _, item := range req.Events {
		start, err := time.Parse(time.RFC3339, item.StartTime)
		if err != nil {
			return nil, ErrInvalidCalendarPayload
		}
		end, err := time.Parse(time.RFC3339, item.EndTime)
		if err != nil {
			return nil, ErrInvalidCalendarPayload
		}
		if end.Before(start) {
			return nil, ErrInvalidCalendarPayload
		}

		source := domain.CalendarSourceGoogle
		if item.Source != "" {
			source = domain.CalendarEventSource(item.Source)
		}
		visible := true
		if item.Visible != nil {
			visible = *item.Visible
		}

		events = append(events, domain.CalendarEvent{
			ID:        item.ID,
			Title:     item.Title,
			StartTime: start,
			EndTime:   end,
			Source:    source,
			Visible:   visible,
		})
	}
	return events, nil
}
