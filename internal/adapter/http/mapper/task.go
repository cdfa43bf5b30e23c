package mapper

import (
	"time"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/core/domain"
)

// ToTaskTree shapes a flat week partition into sorted roots with their
// children nested underneath.
func ToTaskTree(tasks []domain.Task) []dto.TaskItem {
	roots := domain.SortByOrder(domain.RootTasks(tasks))
	items := make([]dto.TaskItem, 0, len(roots))
	for _, root := range roots {
		item := ToTaskItem(root)
		for _, child := range domain.SortByOrder(domain.ChildTasks(tasks, root.ID)) {
			item.Subtasks = append(item.Subtasks, ToTaskItem(child))
		}
		items = append(items, item)
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:               task.ID,
		Title:            task.Title,
		Completed:        task.Completed,
		DayOfWeek:        string(task.DayOfWeek),
		TimeOfDay:        string(task.TimeOfDay),
		Recurring:        task.Recurring,
		WeeklyRecurrence: task.WeeklyRecurrence,
		Order:            task.Order,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
		WeekStartDate:    task.WeekStartDate,
	}
	if task.ParentTaskID != "" {
		value := task.ParentTaskID
		item.ParentTaskID = &value
	}
	return item
}
