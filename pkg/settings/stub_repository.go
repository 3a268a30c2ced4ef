package settings

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	stored  *NotificationSettings
	loadErr error
	saveErr error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Load(_ context.Context) (NotificationSettings, error) {
	if s.loadErr != nil {
		return NotificationSettings{}, s.loadErr
	}
	if s.stored == nil {
		return DefaultNotificationSettings(), nil
	}
	return *s.stored, nil
}

func (s *StubRepository) Save(_ context.Context, settings NotificationSettings) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.stored = &settings
	return nil
}

func (s *StubRepository) SetStored(settings NotificationSettings) {
	s.stored = &settings
}

func (s *StubRepository) FailLoadWith(err error) {
	s.loadErr = err
}

func (s *StubRepository) FailSaveWith(err error) {
	s.saveErr = err
}
