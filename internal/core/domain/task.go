package domain

import "time"

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Days lists the week in display order, Monday first.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type TimeOfDay string

const (
	AM TimeOfDay = "am"
	PM TimeOfDay = "pm"
)

// WeekTemplate is the weekStartDate sentinel marking a task as part of
// the recurring template rather than any concrete week.
const WeekTemplate = "template"

// Task is the unit of the weekly plan. WeekStartDate is either the ISO
// date of the Monday anchoring the task's week, or WeekTemplate. The
// JSON tags match the persisted blob layout shared with the clients.
type Task struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Completed        bool      `json:"completed"`
	DayOfWeek        DayOfWeek `json:"dayOfWeek"`
	TimeOfDay        TimeOfDay `json:"timeOfDay"`
	Recurring        bool      `json:"recurring"`
	WeeklyRecurrence bool      `json:"weeklyRecurrence"`
	ParentTaskID     string    `json:"parentTaskId,omitempty"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	WeekStartDate    string    `json:"weekStartDate,omitempty"`
}

// IsRoot reports whether the task has no parent.
func (t Task) IsRoot() bool {
	return t.ParentTaskID == ""
}

// IsTemplate reports whether the task belongs to the recurring template.
func (t Task) IsTemplate() bool {
	return t.WeekStartDate == WeekTemplate
}

// CreateTaskOptions carries the optional fields of a new task.
type CreateTaskOptions struct {
	Recurring        bool
	WeeklyRecurrence bool
	ParentTaskID     string
	Order            int
	WeekStartDate    string
}

// TaskUpdate is a partial update. Nil pointers leave the field alone.
// ParentTaskIDSet distinguishes "clear the parent" from "leave it".
type TaskUpdate struct {
	Title            *string
	Completed        *bool
	DayOfWeek        *DayOfWeek
	TimeOfDay        *TimeOfDay
	Recurring        *bool
	WeeklyRecurrence *bool
	ParentTaskID     *string
	ParentTaskIDSet  bool
	Order            *int
	WeekStartDate    *string
}

type CalendarEventSource string

const CalendarSourceGoogle CalendarEventSource = "google"

// CalendarEvent is produced by an external calendar integration and is
// read-only here apart from the visible flag.
type CalendarEvent struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Source    CalendarEventSource `json:"source"`
	Visible   bool                `json:"visible"`
}

type GoogleCalendarTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiryDate   int64  `json:"expiryDate"`
}

type AppSettings struct {
	WakeUpTime              string                `json:"wakeUpTime"`
	ShowTasks               bool                  `json:"showTasks"`
	ShowCalendarEvents      bool                  `json:"showCalendarEvents"`
	GoogleCalendarConnected bool                  `json:"googleCalendarConnected"`
	GoogleCalendarTokens    *GoogleCalendarTokens `json:"googleCalendarTokens,omitempty"`
}

// DefaultSettings returns the settings used before the user has saved any.
func DefaultSettings() AppSettings {
	return AppSettings{
		WakeUpTime:         "6am",
		ShowTasks:          true,
		ShowCalendarEvents: true,
	}
}

// SettingsUpdate is a partial settings update merged over the stored value.
type SettingsUpdate struct {
	WakeUpTime              *string
	ShowTasks               *bool
	ShowCalendarEvents      *bool
	GoogleCalendarConnected *bool
	GoogleCalendarTokens    *GoogleCalendarTokens
	GoogleCalendarTokensSet bool
}

// ValidDayOfWeek reports whether s names a day of the planner week.
func ValidDayOfWeek(s string) bool {
	for _, d := range Days {
		if string(d) == s {
			return true
		}
	}
	return false
}

// ValidTimeOfDay reports whether s is a half-day bucket name.
func ValidTimeOfDay(s string) bool {
	return s == string(AM) || s == string(PM)
}
