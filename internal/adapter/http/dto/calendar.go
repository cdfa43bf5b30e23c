package dto

type CalendarEventItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Source    string `json:"source"`
	Visible   bool   `json:"visible"`
}

type ReplaceCalendarEventsRequest struct {
	Events []ReplaceCalendarEvent `json:"events" binding:"required,dive"`
}

type ReplaceCalendarEvent struct {
	ID        string `json:"id" binding:"required,max=128"`
	Title     string `json:"title" binding:"required,max=255"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Source    string `json:"source" binding:"omitempty,oneof=google"`
	Visible   *bool  `json:"visible"`
}
