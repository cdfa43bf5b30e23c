package mapper

import (
	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/core/domain"
)

func ToSettingsItem(settings domain.AppSettings) dto.SettingsItem {
	item := dto.SettingsItem{
		WakeUpTime:              settings.WakeUpTime,
		ShowTasks:               settings.ShowTasks,
		ShowCalendarEvents:      settings.ShowCalendarEvents,
		GoogleCalendarConnected: settings.GoogleCalendarConnected,
	}
	if settings.GoogleCalendarTokens != nil {
		item.GoogleCalendarTokens = &dto.GoogleCalendarTokens{
			AccessToken:  settings.GoogleCalendarTokens.AccessToken,
			RefreshToken: settings.GoogleCalendarTokens.RefreshToken,
			ExpiryDate:   settings.GoogleCalendarTokens.ExpiryDate,
		}
	}
	return item
}
