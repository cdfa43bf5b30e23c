package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

func calendarEvent(id string, start time.Time, visible bool) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:        id,
		Title:     "event " + id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Source:    domain.CalendarSourceGoogle,
		Visible:   visible,
	}
}

func TestCalendarService_EventsForWeek(t *testing.T) {
	stored := []domain.CalendarEvent{
		calendarEvent("in", time.Date(2024, time.January, 10, 10, 0, 0, 0, time.UTC), true),
		calendarEvent("hidden", time.Date(2024, time.January, 10, 11, 0, 0, 0, time.UTC), false),
		calendarEvent("other_week", time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC), true),
	}
	storage := new(storageMock)
	storage.On("GetCalendarEvents", mock.Anything).Return(stored, nil).Once()
	s := NewCalendarService(storage)

	events, err := s.EventsForWeek(context.Background(), "2024-01-08")

	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "in", events[0].ID)
}

func TestCalendarService_EventsForWeek_ReadFailureYieldsEmpty(t *testing.T) {
	storage := new(storageMock)
	storage.On("GetCalendarEvents", mock.Anything).Return(nil, errors.New("corrupt blob")).Once()
	s := NewCalendarService(storage)

	events, err := s.EventsForWeek(context.Background(), "2024-01-08")

	require.NoError(t, err)
	require.Empty(t, events)
}

func TestCalendarService_EventsForWeek_InvalidWeek(t *testing.T) {
	storage := new(storageMock)
	storage.On("GetCalendarEvents", mock.Anything).Return(nil, nil).Once()
	s := NewCalendarService(storage)

	_, err := s.EventsForWeek(context.Background(), "2024-01-09")

	require.ErrorIs(t, err, domain.ErrInvalidWeekStart)
}

func TestCalendarService_ReplaceEvents(t *testing.T) {
	events := []domain.CalendarEvent{
		calendarEvent("a", time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC), true),
	}
	storage := new(storageMock)
	storage.On("SaveCalendarEvents", mock.Anything, events).Return(nil).Once()
	s := NewCalendarService(storage)

	require.NoError(t, s.ReplaceEvents(context.Background(), events))
	storage.AssertExpectations(t)
}
