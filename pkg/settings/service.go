package settings

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetNotificationSettings(ctx context.Context) (NotificationSettings, error)
	// UpdateNotificationSettings clamps and persists the settings, returning
	// what was actually stored.
	UpdateNotificationSettings(ctx context.Context, settings NotificationSettings) (NotificationSettings, error)
	// ResetNotificationSettings restores the defaults.
	ResetNotificationSettings(ctx context.Context) (NotificationSettings, error)
}

type ServiceImpl struct {
	repository Repository
}

func NewService(repository Repository) *ServiceImpl {
	return &ServiceImpl{repository: repository}
}

func (s *ServiceImpl) GetNotificationSettings(ctx context.Context) (NotificationSettings, error) {
	return s.repository.Load(ctx)
}

func (s *ServiceImpl) UpdateNotificationSettings(ctx context.Context, settings NotificationSettings) (NotificationSettings, error) {
	clamped := NewNotificationSettings(settings.Enabled, settings.DayOfWeek, settings.Hour, settings.Minute, settings.DisplayWeekends)
	if err := s.repository.Save(ctx, clamped); err != nil {
		return NotificationSettings{}, err
	}
	log.Debugf("Updated notification settings: %s at %s", clamped.DayName(), clamped.TimeString())
	return clamped, nil
}

func (s *ServiceImpl) ResetNotificationSettings(ctx context.Context) (NotificationSettings, error) {
	defaults := DefaultNotificationSettings()
	if err := s.repository.Save(ctx, defaults); err != nil {
		return NotificationSettings{}, err
	}
	return defaults, nil
}
