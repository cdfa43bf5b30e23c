package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

func templateFixture() []domain.Task {
	root := domain.NewTask("Weekly review", domain.Sunday, domain.PM, domain.CreateTaskOptions{
		Recurring:     true,
		WeekStartDate: domain.WeekTemplate,
	})
	childA := domain.NewTask("Clear inbox", domain.Sunday, domain.PM, domain.CreateTaskOptions{
		Recurring:     true,
		ParentTaskID:  root.ID,
		Order:         1,
		WeekStartDate: domain.WeekTemplate,
	})
	childB := domain.NewTask("Plan meals", domain.Sunday, domain.PM, domain.CreateTaskOptions{
		Recurring:     true,
		ParentTaskID:  root.ID,
		Order:         2,
		WeekStartDate: domain.WeekTemplate,
	})
	gym := domain.NewTask("Gym", domain.Tuesday, domain.AM, domain.CreateTaskOptions{
		Recurring:     true,
		WeekStartDate: domain.WeekTemplate,
	})
	gym.Completed = true
	return []domain.Task{root, childA, childB, gym}
}

func TestCreateWeekFromTemplate(t *testing.T) {
	tmpl := templateFixture()

	week := domain.CreateWeekFromTemplate(tmpl, "2024-01-08")

	require.Len(t, week, 4)
	seen := map[string]struct{}{}
	for i, task := range week {
		require.Equal(t, "2024-01-08", task.WeekStartDate)
		require.False(t, task.Completed, "materialised task %d must start uncompleted", i)
		require.NotContains(t, ids(tmpl), task.ID, "materialised tasks get fresh ids")
		_, dup := seen[task.ID]
		require.False(t, dup)
		seen[task.ID] = struct{}{}
	}

	// Roots come first, children after with remapped parents.
	roots := domain.RootTasks(week)
	require.Len(t, roots, 2)
	children := domain.ChildTasks(week, roots[0].ID)
	require.Len(t, children, 2)
	require.Equal(t, "Clear inbox", children[0].Title)
	require.Equal(t, 1, children[0].Order)
	require.Equal(t, "Plan meals", children[1].Title)
	require.Empty(t, domain.ChildTasks(week, roots[1].ID))
}

func TestCreateWeekFromTemplate_DropsOrphanChildren(t *testing.T) {
	orphan := domain.NewTask("Orphan", domain.Monday, domain.AM, domain.CreateTaskOptions{
		ParentTaskID:  "task_gone",
		WeekStartDate: domain.WeekTemplate,
	})
	tmpl := append(templateFixture(), orphan)

	week := domain.CreateWeekFromTemplate(tmpl, "2024-01-08")

	require.Len(t, week, 4)
	for _, task := range week {
		require.NotEqual(t, "Orphan", task.Title)
	}
}

func TestCreateWeekFromTemplate_EmptyTemplate(t *testing.T) {
	require.Empty(t, domain.CreateWeekFromTemplate(nil, "2024-01-08"))
}

func TestReconcileWithTemplate(t *testing.T) {
	today := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC) // Wednesday, week 2024-01-08
	tmpl := templateFixture()

	past := domain.NewTask("Old chore", domain.Monday, domain.AM, domain.CreateTaskOptions{
		WeekStartDate: "2024-01-01",
	})
	past.Completed = true
	current := domain.NewTask("Stale current", domain.Friday, domain.PM, domain.CreateTaskOptions{
		WeekStartDate: "2024-01-08",
	})
	future := domain.NewTask("Too early", domain.Monday, domain.AM, domain.CreateTaskOptions{
		WeekStartDate: "2024-01-15",
	})

	all := append(append([]domain.Task{}, tmpl...), past, current, future)

	result := domain.ReconcileWithTemplate(all, today)

	// Template and past weeks survive untouched, completion included.
	require.Equal(t, tmpl, domain.TemplateTasks(result))
	require.Equal(t, []domain.Task{past}, domain.TasksForWeek(result, "2024-01-01"))

	// The current week is regenerated from the template.
	regenerated := domain.TasksForWeek(result, "2024-01-08")
	require.Len(t, regenerated, 4)
	require.NotContains(t, ids(regenerated), current.ID)

	// Future weeks are discarded, to be materialised on demand.
	require.Empty(t, domain.TasksForWeek(result, "2024-01-15"))
}

func TestReconcileWithTemplate_EmptyTemplateClearsCurrentWeek(t *testing.T) {
	today := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	current := domain.NewTask("One-off", domain.Monday, domain.AM, domain.CreateTaskOptions{
		WeekStartDate: "2024-01-08",
	})

	result := domain.ReconcileWithTemplate([]domain.Task{current}, today)

	require.Empty(t, result)
}
