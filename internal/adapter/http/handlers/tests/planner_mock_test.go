package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
)

type plannerServiceMock struct {
	mock.Mock
}

func (m *plannerServiceMock) TasksForWeek(ctx context.Context, weekStartDate string) ([]domain.Task, error) {
	args := m.Called(ctx, weekStartDate)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *plannerServiceMock) AddTask(ctx context.Context, input ports.AddTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *plannerServiceMock) UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate) (domain.Task, error) {
	args := m.Called(ctx, taskID, update)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *plannerServiceMock) ToggleTask(ctx context.Context, taskID string) (domain.Task, error) {
	args := m.Called(ctx, taskID)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *plannerServiceMock) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *plannerServiceMock) MoveTask(ctx context.Context, input ports.MoveTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *plannerServiceMock) ReorderBucket(ctx context.Context, input ports.ReorderBucketInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *plannerServiceMock) AvailableWeeks(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var weeks []string
	if value := args.Get(0); value != nil {
		weeks = value.([]string)
	}
	return weeks, args.Error(1)
}

func (m *plannerServiceMock) CreateWeek(ctx context.Context, weekStartDate string) ([]domain.Task, error) {
	args := m.Called(ctx, weekStartDate)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *plannerServiceMock) CreateNextWeek(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *plannerServiceMock) EnsureCurrentWeek(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *plannerServiceMock) DeleteWeek(ctx context.Context, weekStartDate string) error {
	args := m.Called(ctx, weekStartDate)
	return args.Error(0)
}

func (m *plannerServiceMock) PropagateTemplate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *plannerServiceMock) LoadSampleData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
