package workday

import (
	"context"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wfhlog/wfhlog/pkg/financial_year"
)

type Service interface {
	// GetAll returns every stored record, one per calendar day.
	GetAll(ctx context.Context) ([]WorkDay, error)
	// GetWorkDay returns the record for a calendar day, nil when none exists.
	GetWorkDay(ctx context.Context, date time.Time) (*WorkDay, error)
	// GetWorkDays returns the records matching any of the given days.
	GetWorkDays(ctx context.Context, dates []time.Time) ([]WorkDay, error)
	// UpdateWorkDay upserts a record keyed by calendar day. A record with no
	// entries deletes the stored day instead.
	UpdateWorkDay(ctx context.Context, day WorkDay) error
	// DeleteWorkDay removes the record for a calendar day, if any.
	DeleteWorkDay(ctx context.Context, date time.Time) error
	// ClearAll removes every stored record.
	ClearAll(ctx context.Context) error
	// FinancialYears returns the distinct financial years covered by stored
	// records, sorted ascending.
	FinancialYears(ctx context.Context) ([]financial_year.FinancialYear, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]WorkDay, error) {
	return s.repo.LoadAll(ctx)
}

func (s *ServiceImpl) GetWorkDay(ctx context.Context, date time.Time) (*WorkDay, error) {
	days, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range days {
		if SameDay(days[i].Date, date) {
			return &days[i], nil
		}
	}
	return nil, nil
}

func (s *ServiceImpl) GetWorkDays(ctx context.Context, dates []time.Time) ([]WorkDay, error) {
	days, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[time.Time]bool, len(dates))
	for _, date := range dates {
		wanted[DayKey(date)] = true
	}

	matched := make([]WorkDay, 0, len(dates))
	for _, day := range days {
		if wanted[DayKey(day.Date)] {
			matched = append(matched, day)
		}
	}
	return matched, nil
}

func (s *ServiceImpl) UpdateWorkDay(ctx context.Context, day WorkDay) error {
	if !day.HasData() {
		// Upsert-with-empty-entries means delete, same as an explicit remove.
		return s.DeleteWorkDay(ctx, day.Date)
	}

	days, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	day.Date = DayKey(day.Date)
	replaced := false
	for i := range days {
		if SameDay(days[i].Date, day.Date) {
			days[i] = day
			replaced = true
			break
		}
	}
	if !replaced {
		days = append(days, day)
	}

	log.Debugf("upserting work day %s (%d categories)", day.Date.Format(dateLayout), len(day.Entries))
	return s.repo.SaveAll(ctx, days)
}

func (s *ServiceImpl) DeleteWorkDay(ctx context.Context, date time.Time) error {
	days, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	remaining := days[:0]
	for _, day := range days {
		if !SameDay(day.Date, date) {
			remaining = append(remaining, day)
		}
	}
	if len(remaining) == len(days) {
		return nil
	}

	log.Debugf("deleting work day %s", DayKey(date).Format(dateLayout))
	return s.repo.SaveAll(ctx, remaining)
}

func (s *ServiceImpl) ClearAll(ctx context.Context) error {
	if err := s.repo.SaveAll(ctx, []WorkDay{}); err != nil {
		return fmt.Errorf("failed to clear work days: %w", err)
	}
	return nil
}

func (s *ServiceImpl) FinancialYears(ctx context.Context) ([]financial_year.FinancialYear, error) {
	days, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	unique := make(map[financial_year.FinancialYear]bool)
	for _, day := range days {
		unique[financial_year.ForDate(day.Date)] = true
	}

	years := make([]financial_year.FinancialYear, 0, len(unique))
	for fy := range unique {
		years = append(years, fy)
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].Before(years[j])
	})
	return years, nil
}
