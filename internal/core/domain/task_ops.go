package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"time"
)

const idSuffixLen = 9

var base36 = []byte("0123456789abcdefghijklmnopqrstuvwxyz")

// NewTaskID generates a collision-resistant opaque task id from the
// current time and a random base36 suffix. Uniqueness is probabilistic,
// which is enough for a single-user collection.
func NewTaskID() string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			// crypto/rand only fails if the platform source is broken;
			// fall back to a time-derived digit.
			suffix[i] = base36[time.Now().UnixNano()%int64(len(base36))]
			continue
		}
		suffix[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("task_%d_%s", time.Now().UnixMilli(), suffix)
}

// NewTask builds a task with a fresh id, completed false and timestamps
// set to now. Title validation is the caller's responsibility.
func NewTask(title string, day DayOfWeek, timeOfDay TimeOfDay, opts CreateTaskOptions) Task {
	now := time.Now().UTC()
	return Task{
		ID:               NewTaskID(),
		Title:            title,
		Completed:        false,
		DayOfWeek:        day,
		TimeOfDay:        timeOfDay,
		Recurring:        opts.Recurring,
		WeeklyRecurrence: opts.WeeklyRecurrence,
		ParentTaskID:     opts.ParentTaskID,
		Order:            opts.Order,
		CreatedAt:        now,
		UpdatedAt:        now,
		WeekStartDate:    opts.WeekStartDate,
	}
}

// UpdateTask merges a partial update onto a task and refreshes
// UpdatedAt. The id is never touched.
func UpdateTask(t Task, u TaskUpdate) Task {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.DayOfWeek != nil {
		t.DayOfWeek = *u.DayOfWeek
	}
	if u.TimeOfDay != nil {
		t.TimeOfDay = *u.TimeOfDay
	}
	if u.Recurring != nil {
		t.Recurring = *u.Recurring
	}
	if u.WeeklyRecurrence != nil {
		t.WeeklyRecurrence = *u.WeeklyRecurrence
	}
	if u.ParentTaskIDSet {
		if u.ParentTaskID != nil {
			t.ParentTaskID = *u.ParentTaskID
		} else {
			t.ParentTaskID = ""
		}
	}
	if u.Order != nil {
		t.Order = *u.Order
	}
	if u.WeekStartDate != nil {
		t.WeekStartDate = *u.WeekStartDate
	}
	t.UpdatedAt = time.Now().UTC()
	return t
}

// ToggleCompletion flips the completed flag. Applying it twice restores
// the original value.
func ToggleCompletion(t Task) Task {
	completed := !t.Completed
	return UpdateTask(t, TaskUpdate{Completed: &completed})
}

// SortByOrder returns a copy sorted ascending by order. The sort is
// stable so equal orders keep their input sequence.
func SortByOrder(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func filterTasks(tasks []Task, keep func(Task) bool) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// TasksByDay filters to a single day, preserving input order.
func TasksByDay(tasks []Task, day DayOfWeek) []Task {
	return filterTasks(tasks, func(t Task) bool { return t.DayOfWeek == day })
}

// TasksByDayAndTime filters to one day/half-day bucket.
func TasksByDayAndTime(tasks []Task, day DayOfWeek, timeOfDay TimeOfDay) []Task {
	return filterTasks(tasks, func(t Task) bool {
		return t.DayOfWeek == day && t.TimeOfDay == timeOfDay
	})
}

// ChildTasks returns the direct children of parentID.
func ChildTasks(tasks []Task, parentID string) []Task {
	return filterTasks(tasks, func(t Task) bool { return t.ParentTaskID == parentID })
}

// RootTasks returns the tasks with no parent.
func RootTasks(tasks []Task) []Task {
	return filterTasks(tasks, func(t Task) bool { return t.IsRoot() })
}

// TemplateTasks returns the recurring template partition.
func TemplateTasks(tasks []Task) []Task {
	return filterTasks(tasks, func(t Task) bool { return t.IsTemplate() })
}

// TasksForWeek returns the partition for one week-start key (which may
// be the template sentinel).
func TasksForWeek(tasks []Task, weekStartDate string) []Task {
	return filterTasks(tasks, func(t Task) bool { return t.WeekStartDate == weekStartDate })
}

// DeleteTask removes the task with taskID together with its direct
// children. Children never have children of their own in this model, so
// a single-level cascade is complete. An unknown id returns the input
// unchanged.
func DeleteTask(tasks []Task, taskID string) []Task {
	found := false
	for _, t := range tasks {
		if t.ID == taskID {
			found = true
			break
		}
	}
	if !found {
		return tasks
	}
	return filterTasks(tasks, func(t Task) bool {
		return t.ID != taskID && t.ParentTaskID != taskID
	})
}

// Renumber reassigns order to each task's position in the given
// sequence. The caller decides the sequence; this only renumbers.
func Renumber(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		order := i
		out[i] = UpdateTask(t, TaskUpdate{Order: &order})
	}
	return out
}
