package dto

type GoogleCalendarTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiryDate   int64  `json:"expiry_date"`
}

type SettingsItem struct {
	WakeUpTime              string                `json:"wake_up_time"`
	ShowTasks               bool                  `json:"show_tasks"`
	ShowCalendarEvents      bool                  `json:"show_calendar_events"`
	GoogleCalendarConnected bool                  `json:"google_calendar_connected"`
	GoogleCalendarTokens    *GoogleCalendarTokens `json:"google_calendar_tokens,omitempty"`
}

type UpdateSettingsRequest struct {
	WakeUpTime              *string               `json:"wake_up_time" binding:"omitempty,max=16"`
	ShowTasks               *bool                 `json:"show_tasks"`
	ShowCalendarEvents      *bool                 `json:"show_calendar_events"`
	GoogleCalendarConnected *bool                 `json:"google_calendar_connected"`
	GoogleCalendarTokens    *GoogleCalendarTokens `json:"google_calendar_tokens"`
}
