package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
)

// PlannerService orchestrates every task mutation as a serialized
// read-modify-write cycle over the storage port. The mutex guarantees a
// mutation never starts from state that a still-in-flight write would
// make stale.
type PlannerService struct {
	storage ports.Storage
	mu      sync.Mutex
	now     func() time.Time
}

func NewPlannerService(storage ports.Storage) *PlannerService {
	return &PlannerService{storage: storage, now: time.Now}
}

var _ ports.PlannerService = (*PlannerService)(nil)

// loadTasks reads the collection, falling back to an empty one on read
// failure. A later successful read recovers normal state.
func (s *PlannerService) loadTasks(ctx context.Context) []domain.Task {
	tasks, err := s.storage.GetTasks(ctx)
	if err != nil {
		zap.L().Error("failed to load tasks, starting from empty collection", zap.Error(err))
		return nil
	}
	return tasks
}

func (s *PlannerService) TasksForWeek(ctx context.Context, weekStartDate string) ([]domain.Task, error) {
	if weekStartDate != domain.WeekTemplate {
		if _, err := domain.ParseWeekStart(weekStartDate); err != nil {
			return nil, err
		}
	}
	return domain.TasksForWeek(s.loadTasks(ctx), weekStartDate), nil
}

func (s *PlannerService) AddTask(ctx context.Context, input ports.AddTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)

	if input.ParentTaskID != "" {
		if err := checkParent(tasks, input.ParentTaskID, input.WeekStartDate); err != nil {
			return domain.Task{}, err
		}
	}

	task := domain.NewTask(input.Title, input.DayOfWeek, input.TimeOfDay, domain.CreateTaskOptions{
		ParentTaskID:  input.ParentTaskID,
		Recurring:     input.Recurring,
		Order:         len(tasks),
		WeekStartDate: input.WeekStartDate,
	})

	if err := s.storage.SaveTasks(ctx, append(tasks, task)); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return domain.Task{}, err
	}
	return task, nil
}

func (s *PlannerService) UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	idx := indexByID(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	// Reparenting must point at an existing root in the same week; the
	// original clients never checked this and could orphan children.
	if update.ParentTaskIDSet && update.ParentTaskID != nil && *update.ParentTaskID != "" {
		week := tasks[idx].WeekStartDate
		if update.WeekStartDate != nil {
			week = *update.WeekStartDate
		}
		if err := checkParent(tasks, *update.ParentTaskID, week); err != nil {
			return domain.Task{}, err
		}
	}

	updated := domain.UpdateTask(tasks[idx], update)
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)
	next[idx] = updated

	if err := s.storage.SaveTasks(ctx, next); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return domain.Task{}, err
	}
	return updated, nil
}

func (s *PlannerService) ToggleTask(ctx context.Context, taskID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	idx := indexByID(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	toggled := domain.ToggleCompletion(tasks[idx])
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)
	next[idx] = toggled

	if err := s.storage.SaveTasks(ctx, next); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return domain.Task{}, err
	}
	return toggled, nil
}

// DeleteTask removes a task and its direct children. An unknown id is a
// no-op, not an error.
func (s *PlannerService) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	remaining := domain.DeleteTask(tasks, taskID)
	if len(remaining) == len(tasks) {
		return nil
	}
	if err := s.storage.SaveTasks(ctx, remaining); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return err
	}
	return nil
}

// MoveTask relocates a root task and its children to a new day/half-day
// bucket within the task's own week. The moved root is inserted at
// TargetIndex (end if nil) among the destination roots and the bucket
// is renumbered; children follow the parent's day and time but keep
// their own order.
func (s *PlannerService) MoveTask(ctx context.Context, input ports.MoveTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	idx := indexByID(tasks, input.TaskID)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	moved := tasks[idx]

	movedIDs := map[string]struct{}{moved.ID: {}}
	for _, child := range domain.ChildTasks(tasks, moved.ID) {
		movedIDs[child.ID] = struct{}{}
	}

	// Destination bucket roots in the same week, without the moved family.
	var destRoots []domain.Task
	for _, t := range tasks {
		if _, isMoved := movedIDs[t.ID]; isMoved {
			continue
		}
		if t.IsRoot() && t.WeekStartDate == moved.WeekStartDate &&
			t.DayOfWeek == input.DayOfWeek && t.TimeOfDay == input.TimeOfDay {
			destRoots = append(destRoots, t)
		}
	}
	destRoots = domain.SortByOrder(destRoots)

	target := len(destRoots)
	if input.TargetIndex != nil && *input.TargetIndex >= 0 && *input.TargetIndex < len(destRoots) {
		target = *input.TargetIndex
	}
	sequence := make([]domain.Task, 0, len(destRoots)+1)
	sequence = append(sequence, destRoots[:target]...)
	sequence = append(sequence, moved)
	sequence = append(sequence, destRoots[target:]...)

	orderByID := make(map[string]int, len(sequence))
	for i, t := range sequence {
		orderByID[t.ID] = i
	}

	var result domain.Task
	next := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		if _, isMoved := movedIDs[t.ID]; isMoved {
			upd := domain.TaskUpdate{DayOfWeek: &input.DayOfWeek, TimeOfDay: &input.TimeOfDay}
			if t.ID == moved.ID {
				order := orderByID[moved.ID]
				upd.Order = &order
			}
			next[i] = domain.UpdateTask(t, upd)
			if t.ID == moved.ID {
				result = next[i]
			}
			continue
		}
		if order, ok := orderByID[t.ID]; ok && order != t.Order {
			next[i] = domain.UpdateTask(t, domain.TaskUpdate{Order: &order})
			continue
		}
		next[i] = t
	}

	if err := s.storage.SaveTasks(ctx, next); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return domain.Task{}, err
	}
	return result, nil
}

// ReorderBucket replaces one bucket's root tasks with the given id
// sequence, renumbered 0..n-1. Only root tasks matching the bucket key
// are replaced, so children of reordered parents are untouched.
func (s *PlannerService) ReorderBucket(ctx context.Context, input ports.ReorderBucketInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)

	byID := make(map[string]domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	reordered := make([]domain.Task, 0, len(input.OrderedIDs))
	for i, id := range input.OrderedIDs {
		t, ok := byID[id]
		if !ok {
			return domain.ErrTaskNotFound
		}
		order := i
		reordered = append(reordered, domain.UpdateTask(t, domain.TaskUpdate{Order: &order}))
	}

	inBucket := func(t domain.Task) bool {
		return t.IsRoot() && t.WeekStartDate == input.WeekStartDate &&
			t.DayOfWeek == input.DayOfWeek && t.TimeOfDay == input.TimeOfDay
	}
	var next []domain.Task
	for _, t := range tasks {
		if !inBucket(t) {
			next = append(next, t)
		}
	}
	next = append(next, reordered...)

	if err := s.storage.SaveTasks(ctx, next); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return err
	}
	return nil
}

func (s *PlannerService) AvailableWeeks(ctx context.Context) ([]string, error) {
	return domain.AvailableWeeks(s.loadTasks(ctx)), nil
}

// CreateWeek materialises a week from the template on demand.
func (s *PlannerService) CreateWeek(ctx context.Context, weekStartDate string) ([]domain.Task, error) {
	if _, err := domain.ParseWeekStart(weekStartDate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createWeekLocked(ctx, weekStartDate)
}

func (s *PlannerService) createWeekLocked(ctx context.Context, weekStartDate string) ([]domain.Task, error) {
	tasks := s.loadTasks(ctx)
	created := domain.CreateWeekFromTemplate(domain.TemplateTasks(tasks), weekStartDate)
	if err := s.storage.SaveTasks(ctx, append(tasks, created...)); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// CreateNextWeek materialises the successor of the latest existing week,
// or of the current week when nothing is materialised yet.
func (s *PlannerService) CreateNextWeek(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	weeks := domain.AvailableWeeks(tasks)
	latest := domain.WeekStart(s.now())
	if len(weeks) > 0 {
		latest = weeks[len(weeks)-1]
	}
	next, err := domain.NextWeekStart(latest)
	if err != nil {
		return "", err
	}
	if _, err := s.createWeekLocked(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// EnsureCurrentWeek materialises the current week if it has no tasks yet.
func (s *PlannerService) EnsureCurrentWeek(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := domain.WeekStart(s.now())
	for _, week := range domain.AvailableWeeks(s.loadTasks(ctx)) {
		if week == current {
			return current, nil
		}
	}
	if _, err := s.createWeekLocked(ctx, current); err != nil {
		return "", err
	}
	return current, nil
}

// DeleteWeek removes every task in a week. The template is refused.
func (s *PlannerService) DeleteWeek(ctx context.Context, weekStartDate string) error {
	if weekStartDate == domain.WeekTemplate {
		return domain.ErrTemplateImmutable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	remaining := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.WeekStartDate != weekStartDate {
			remaining = append(remaining, t)
		}
	}
	if err := s.storage.SaveTasks(ctx, remaining); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return err
	}
	return nil
}

// PropagateTemplate pushes template changes out: past weeks are kept
// untouched, the current week is regenerated, current-and-future
// materialisations are discarded.
func (s *PlannerService) PropagateTemplate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reconciled := domain.ReconcileWithTemplate(s.loadTasks(ctx), s.now())
	if err := s.storage.SaveTasks(ctx, reconciled); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return err
	}
	return nil
}

// LoadSampleData replaces the whole collection with the starter plan.
func (s *PlannerService) LoadSampleData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample := domain.SampleTasks(domain.WeekStart(s.now()))
	if err := s.storage.SaveTasks(ctx, sample); err != nil {
		zap.L().Error("failed to save tasks", zap.Error(err))
		return err
	}
	return nil
}

func indexByID(tasks []domain.Task, taskID string) int {
	for i, t := range tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// checkParent validates a reparent target: it must exist, live in the
// same week partition, and be a root (the tree is two levels deep).
func checkParent(tasks []domain.Task, parentID, weekStartDate string) error {
	idx := indexByID(tasks, parentID)
	if idx < 0 || tasks[idx].WeekStartDate != weekStartDate {
		return domain.ErrParentTaskNotFound
	}
	if !tasks[idx].IsRoot() {
		return domain.ErrParentTaskNotRoot
	}
	return nil
}
