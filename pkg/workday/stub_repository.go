package workday

import (
	"context"
)

// StubRepository is an in-memory Repository for tests in this and other
// packages.
type StubRepository struct {
	days    []WorkDay
	loadErr error
	saveErr error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{days: []WorkDay{}}
}

func (s *StubRepository) LoadAll(_ context.Context) ([]WorkDay, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]WorkDay, len(s.days))
	copy(out, s.days)
	return out, nil
}

func (s *StubRepository) SaveAll(_ context.Context, days []WorkDay) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.days = make([]WorkDay, len(days))
	copy(s.days, days)
	return nil
}

func (s *StubRepository) SetDays(days []WorkDay) {
	s.days = days
}

func (s *StubRepository) FailLoadWith(err error) {
	s.loadErr = err
}

func (s *StubRepository) FailSaveWith(err error) {
	s.saveErr = err
}

func (s *StubRepository) Reset() {
	s.days = []WorkDay{}
	s.loadErr = nil
	s.saveErr = nil
}
