package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

func event(id string, start time.Time, visible bool) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:        id,
		Title:     "event " + id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Source:    domain.CalendarSourceGoogle,
		Visible:   visible,
	}
}

func TestVisibleEvents(t *testing.T) {
	start := time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC)
	events := []domain.CalendarEvent{
		event("a", start, true),
		event("b", start, false),
		event("c", start, true),
	}

	visible := domain.VisibleEvents(events)

	require.Len(t, visible, 2)
	require.Equal(t, "a", visible[0].ID)
	require.Equal(t, "c", visible[1].ID)
}

func TestEventsInWeek(t *testing.T) {
	events := []domain.CalendarEvent{
		event("before", time.Date(2024, time.January, 7, 23, 0, 0, 0, time.UTC), true),
		event("monday", time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), true),
		event("sunday", time.Date(2024, time.January, 14, 23, 59, 0, 0, time.UTC), true),
		event("next", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), true),
	}

	inWeek, err := domain.EventsInWeek(events, "2024-01-08")
	require.NoError(t, err)
	require.Len(t, inWeek, 2)
	require.Equal(t, "monday", inWeek[0].ID)
	require.Equal(t, "sunday", inWeek[1].ID)

	_, err = domain.EventsInWeek(events, "2024-01-09")
	require.ErrorIs(t, err, domain.ErrInvalidWeekStart)
}

func TestEventsForDayAndTime(t *testing.T) {
	events := []domain.CalendarEvent{
		event("late", time.Date(2024, time.January, 10, 11, 0, 0, 0, time.UTC), true),
		event("early", time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC), true),
		event("afternoon", time.Date(2024, time.January, 10, 14, 0, 0, 0, time.UTC), true),
		event("thursday", time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC), true),
	}

	bucket, err := domain.EventsForDayAndTime(events, "2024-01-08", domain.Wednesday, domain.AM)
	require.NoError(t, err)
	require.Equal(t, []string{"early", "late"}, eventIDs(bucket))

	bucket, err = domain.EventsForDayAndTime(events, "2024-01-08", domain.Wednesday, domain.PM)
	require.NoError(t, err)
	require.Equal(t, []string{"afternoon"}, eventIDs(bucket))
}

func TestEventInWeek(t *testing.T) {
	reference := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

	require.True(t, domain.EventInWeek(time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), reference))
	require.True(t, domain.EventInWeek(time.Date(2024, time.January, 14, 23, 0, 0, 0, time.UTC), reference))
	require.False(t, domain.EventInWeek(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), reference))
}

func eventIDs(events []domain.CalendarEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
