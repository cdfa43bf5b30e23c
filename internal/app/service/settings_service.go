package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
)

// SettingsService merges partial updates over the stored settings blob.
type SettingsService struct {
	storage ports.Storage
	mu      sync.Mutex
}

func NewSettingsService(storage ports.Storage) *SettingsService {
	return &SettingsService{storage: storage}
}

var _ ports.SettingsService = (*SettingsService)(nil)

// Settings returns the stored settings, or the defaults when the read
// fails or nothing is stored yet.
func (s *SettingsService) Settings(ctx context.Context) (domain.AppSettings, error) {
	settings, err := s.storage.GetSettings(ctx)
	if err != nil {
		zap.L().Error("failed to load settings, using defaults", zap.Error(err))
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.AppSettings{}, err
	}

	if update.WakeUpTime != nil {
		settings.WakeUpTime = *update.WakeUpTime
	}
	if update.ShowTasks != nil {
		settings.ShowTasks = *update.ShowTasks
	}
	if update.ShowCalendarEvents != nil {
		settings.ShowCalendarEvents = *update.ShowCalendarEvents
	}
	if update.GoogleCalendarConnected != nil {
		settings.GoogleCalendarConnected = *update.GoogleCalendarConnected
	}
	if update.GoogleCalendarTokensSet {
		settings.GoogleCalendarTokens = update.GoogleCalendarTokens
	}

	if err := s.storage.SaveSettings(ctx, settings); err != nil {
		zap.L().Error("failed to save settings", zap.Error(err))
		return domain.AppSettings{}, err
	}
	return settings, nil
}
