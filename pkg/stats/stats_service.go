package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/wfhlog/wfhlog/pkg/financial_year"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

type StatsService interface {
	// GetMonthlyTotals aggregates stored records for one calendar month.
	GetMonthlyTotals(ctx context.Context, month time.Month, year int) (WorkTotals, error)
	// GetYearlyTotals aggregates stored records for the financial year
	// containing the reference date.
	GetYearlyTotals(ctx context.Context, referenceDate time.Time) (WorkTotals, financial_year.FinancialYear, error)
}

type StatsServiceImpl struct {
	workDayService workday.Service
}

func NewStatsService(workDayService workday.Service) *StatsServiceImpl {
	return &StatsServiceImpl{workDayService: workDayService}
}

func (s *StatsServiceImpl) GetMonthlyTotals(ctx context.Context, month time.Month, year int) (WorkTotals, error) {
	days, err := s.workDayService.GetAll(ctx)
	if err != nil {
		return WorkTotals{}, fmt.Errorf("failed to load work days: %w", err)
	}
	return MonthlyTotals(days, month, year), nil
}

func (s *StatsServiceImpl) GetYearlyTotals(ctx context.Context, referenceDate time.Time) (WorkTotals, financial_year.FinancialYear, error) {
	days, err := s.workDayService.GetAll(ctx)
	if err != nil {
		return WorkTotals{}, financial_year.FinancialYear{}, fmt.Errorf("failed to load work days: %w", err)
	}
	fy := financial_year.ForDate(referenceDate)
	return YearlyTotals(days, referenceDate), fy, nil
}
