package dto

type TaskItem struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Completed        bool       `json:"completed"`
	DayOfWeek        string     `json:"day_of_week"`
	TimeOfDay        string     `json:"time_of_day"`
	Recurring        bool       `json:"recurring"`
	WeeklyRecurrence bool       `json:"weekly_recurrence"`
	ParentTaskID     *string    `json:"parent_task_id,omitempty"`
	Order            int        `json:"order"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
	WeekStartDate    string     `json:"week_start_date,omitempty"`
	Subtasks         []TaskItem `json:"subtasks,omitempty"`
}

type CreateTaskRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	DayOfWeek     string  `json:"day_of_week" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeOfDay     string  `json:"time_of_day" binding:"required,oneof=am pm"`
	Recurring     *bool   `json:"recurring" binding:"omitempty"`
	ParentTaskID  *string `json:"parent_task_id" binding:"omitempty,max=64"`
	WeekStartDate string  `json:"week_start_date" binding:"required,max=16"`
}

type UpdateTaskRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=255"`
	Completed        *bool   `json:"completed"`
	DayOfWeek        *string `json:"day_of_week" binding:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeOfDay        *string `json:"time_of_day" binding:"omitempty,oneof=am pm"`
	Recurring        *bool   `json:"recurring"`
	WeeklyRecurrence *bool   `json:"weekly_recurrence"`
	ParentTaskID     *string `json:"parent_task_id" binding:"omitempty,max=64"`
	Order            *int    `json:"order" binding:"omitempty,gte=0"`
	WeekStartDate    *string `json:"week_start_date" binding:"omitempty,max=16"`
}

type MoveTaskRequest struct {
	DayOfWeek   string `json:"day_of_week" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeOfDay   string `json:"time_of_day" binding:"required,oneof=am pm"`
	TargetIndex *int   `json:"target_index" binding:"omitempty,gte=0"`
}

type ReorderBucketRequest struct {
	WeekStartDate string   `json:"week_start_date" binding:"required,max=16"`
	DayOfWeek     string   `json:"day_of_week" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeOfDay     string   `json:"time_of_day" binding:"required,oneof=am pm"`
	TaskIDs       []string `json:"task_ids" binding:"required,min=1"`
}
