package domain

// SampleTasks builds a starter plan in the given week so a fresh
// install has something on the board. One parent task carries children
// to demonstrate nesting, and the gym entries are pre-completed.
func SampleTasks(weekStartDate string) []Task {
	var tasks []Task
	add := func(title string, day DayOfWeek, timeOfDay TimeOfDay, opts CreateTaskOptions) Task {
		opts.Order = len(tasks)
		opts.WeekStartDate = weekStartDate
		t := NewTask(title, day, timeOfDay, opts)
		tasks = append(tasks, t)
		return t
	}
	recurring := CreateTaskOptions{Recurring: true, WeeklyRecurrence: true}

	gym := add("Gym / Flow 6am", Monday, AM, recurring)
	add("Wash and dry hair", Monday, PM, CreateTaskOptions{})
	add("Put away dried clothes", Monday, PM, CreateTaskOptions{})
	add("Vacuum", Monday, PM, CreateTaskOptions{})
	find := add("Find", Monday, PM, CreateTaskOptions{})
	add("Coworking spaces", Monday, PM, CreateTaskOptions{ParentTaskID: find.ID})
	add("Volunteer events", Monday, PM, CreateTaskOptions{ParentTaskID: find.ID})
	add("Regular events (broadway shows, book clubs)", Monday, PM, CreateTaskOptions{ParentTaskID: find.ID})
	add("Outside hobbies (pottery)", Monday, PM, CreateTaskOptions{ParentTaskID: find.ID})

	cycle := add("Gym / Killer Cycle 6am", Tuesday, AM, recurring)
	add("Weekly Cleanup pt 1", Tuesday, PM, recurring)
	add("To-do", Tuesday, PM, CreateTaskOptions{})

	walk := add("Walk with Aly", Wednesday, AM, recurring)

	ufc := add("Gym / UFC Killer Cycle 6am", Thursday, AM, recurring)
	add("Weekly Cleanup Pt 2", Thursday, PM, recurring)
	add("Register car", Thursday, PM, CreateTaskOptions{})
	add("Look at target thing", Thursday, PM, CreateTaskOptions{})
	add("Move Nissan apt", Thursday, PM, CreateTaskOptions{})

	bar := add("Cycle Bar", Friday, AM, recurring)
	cleanup := add("Weekly Cleanup Pt 2", Friday, AM, recurring)
	add("Yoga Joint (5pm)", Friday, PM, recurring)

	completed := map[string]struct{}{
		gym.ID: {}, cycle.ID: {}, walk.ID: {}, ufc.ID: {}, bar.ID: {}, cleanup.ID: {},
	}
	for i := range tasks {
		if _, ok := completed[tasks[i].ID]; ok {
			tasks[i].Completed = true
		}
	}
	return tasks
}
