package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
)

// CalendarService serves the calendar overlay. Events are produced by
// an external integration; this only stores and filters them.
type CalendarService struct {
	storage ports.Storage
}

func NewCalendarService(storage ports.Storage) *CalendarService {
	return &CalendarService{storage: storage}
}

var _ ports.CalendarService = (*CalendarService)(nil)

// EventsForWeek returns the visible events of one week.
func (s *CalendarService) EventsForWeek(ctx context.Context, weekStartDate string) ([]domain.CalendarEvent, error) {
	events, err := s.storage.GetCalendarEvents(ctx)
	if err != nil {
		zap.L().Error("failed to load calendar events, using empty collection", zap.Error(err))
		events = nil
	}
	return domain.EventsInWeek(domain.VisibleEvents(events), weekStartDate)
}

// ReplaceEvents overwrites the stored event collection.
func (s *CalendarService) ReplaceEvents(ctx context.Context, events []domain.CalendarEvent) error {
	if err := s.storage.SaveCalendarEvents(ctx, events); err != nil {
		zap.L().Error("failed to save calendar events", zap.Error(err))
		return err
	}
	return nil
}
