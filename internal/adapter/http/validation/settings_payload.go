package validation

import (
	"encoding/json"
	"errors"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/core/domain"
)

var ErrInvalidSettingsPayload = errors.New("invalid settings payload")

// BuildSettingsUpdate maps a partial settings request onto a domain
// update. An explicit "google_calendar_tokens": null clears the stored
// token bundle (the disconnect path).
func BuildSettingsUpdate(req dto.UpdateSettingsRequest, raw map[string]json.RawMessage) (domain.SettingsUpdate, error) {
	if len(raw) == 0 {
		return domain.SettingsUpdate{}, ErrInvalidSettingsPayload
	}

	var update domain.SettingsUpdate

	if hasJSONField(raw, "wake_up_time") {
		if req.WakeUpTime == nil {
			return domain.SettingsUpdate{}, ErrInvalidSettingsPayload
		}
		update.WakeUpTime = req.WakeUpTime
	}
	if hasJSONField(raw, "show_tasks") {
		if req.ShowTasks == nil {
			return domain.SettingsUpdate{}, ErrInvalidSettingsPayload
		}
		update.ShowTasks = req.ShowTasks
	}
	if hasJSONField(raw, "show_calendar_events") {
		if req.ShowCalendarEvents == nil {
			return domain.SettingsUpdate{}, ErrInvalidSettingsPayload
		}
		update.ShowCalendarEvents = req.ShowCalendarEvents
	}
	if hasJSONField(raw, "google_calendar_connected") {
		if req.GoogleCalendarConnected == nil {
			return domain.SettingsUpdate{}, ErrInvalidSettingsPayload
		}
		update.GoogleCalendarConnected = req.GoogleCalendarConnected
	}
	if hasJSONField(raw, "google_calendar_tokens") {
		update.GoogleCalendarTokensSet = true
		if !isJSONNull(raw["google_calendar_tokens"]) {
			if req.GoogleCalendarTokens == nil {
				return domain.SettingsUpdate{}, ErrInvalidSettingsPayload
			}
			update.GoogleCalendarTokens = &domain.GoogleCalendarTokens{
				AccessToken:  req.GoogleCalendarTokens.AccessToken,
				RefreshToken: req.GoogleCalendarTokens.RefreshToken,
				ExpiryDate:   req.GoogleCalendarTokens.ExpiryDate,
			}
		}
	}

	return update, nil
}
