package domain

import "time"

// CreateWeekFromTemplate materialises the recurring template into a
// concrete week. Root templates are copied first with fresh ids, then
// children are copied with their parent reference remapped to the new
// root id. A child whose parent is missing from the template is dropped
// silently. Completion state never carries over: every materialised
// task starts uncompleted.
func CreateWeekFromTemplate(templateTasks []Task, weekStartDate string) []Task {
	newTasks := make([]Task, 0, len(templateTasks))
	parentIDs := make(map[string]string, len(templateTasks))

	for _, tmpl := range RootTasks(templateTasks) {
		task := NewTask(tmpl.Title, tmpl.DayOfWeek, tmpl.TimeOfDay, CreateTaskOptions{
			Recurring:        tmpl.Recurring,
			WeeklyRecurrence: tmpl.WeeklyRecurrence,
			Order:            tmpl.Order,
			WeekStartDate:    weekStartDate,
		})
		newTasks = append(newTasks, task)
		parentIDs[tmpl.ID] = task.ID
	}

	for _, tmpl := range templateTasks {
		if tmpl.IsRoot() {
			continue
		}
		newParentID, ok := parentIDs[tmpl.ParentTaskID]
		if !ok {
			continue
		}
		newTasks = append(newTasks, NewTask(tmpl.Title, tmpl.DayOfWeek, tmpl.TimeOfDay, CreateTaskOptions{
			Recurring:        tmpl.Recurring,
			WeeklyRecurrence: tmpl.WeeklyRecurrence,
			ParentTaskID:     newParentID,
			Order:            tmpl.Order,
			WeekStartDate:    weekStartDate,
		}))
	}

	return newTasks
}

// ReconcileWithTemplate applies a template change to the whole
// collection. Past weeks (strictly before today's Monday) are kept
// byte-for-byte, the current week is regenerated fresh from the
// template, and everything at or after the current week is discarded.
// Future weeks are not regenerated; navigating to one materialises it
// on demand.
func ReconcileWithTemplate(tasks []Task, today time.Time) []Task {
	currentWeek := WeekStart(today)
	templates := TemplateTasks(tasks)

	kept := filterTasks(tasks, func(t Task) bool {
		if t.IsTemplate() {
			return true
		}
		return t.WeekStartDate != "" && t.WeekStartDate < currentWeek
	})

	return append(kept, CreateWeekFromTemplate(templates, currentWeek)...)
}
