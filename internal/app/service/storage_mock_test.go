package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

type storageMock struct {
	mock.Mock
}

func (m *storageMock) GetTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *storageMock) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *storageMock) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	args := m.Called(ctx)

	var settings domain.AppSettings
	if value := args.Get(0); value != nil {
		settings = value.(domain.AppSettings)
	}
	return settings, args.Error(1)
}

func (m *storageMock) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *storageMock) GetCalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx)

	var events []domain.CalendarEvent
	if value := args.Get(0); value != nil {
		events = value.([]domain.CalendarEvent)
	}
	return events, args.Error(1)
}

func (m *storageMock) SaveCalendarEvents(ctx context.Context, events []domain.CalendarEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
