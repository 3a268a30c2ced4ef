package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wfhlog/wfhlog/pkg/financial_year"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

var ErrExportFailure = errors.New("export failure")

type Service interface {
	// ExportYear renders the CSV report for a financial year.
	ExportYear(ctx context.Context, fy financial_year.FinancialYear) (string, error)
	// ExportRange renders the CSV report for an arbitrary inclusive date range.
	ExportRange(ctx context.Context, from time.Time, to time.Time) (string, error)
	// ExportToFile renders a financial year report and writes it into the
	// configured export directory, returning the written path.
	ExportToFile(ctx context.Context, fy financial_year.FinancialYear) (string, error)
}

type ServiceImpl struct {
	workDayService workday.Service
	renderer       CsvExportRenderer
	exportDir      string
}

func NewService(workDayService workday.Service, renderer CsvExportRenderer, exportDir string) *ServiceImpl {
	return &ServiceImpl{
		workDayService: workDayService,
		renderer:       renderer,
		exportDir:      exportDir,
	}
}

func (s *ServiceImpl) ExportYear(ctx context.Context, fy financial_year.FinancialYear) (string, error) {
	lookup, err := s.dayLookup(ctx)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(fy, lookup)
}

func (s *ServiceImpl) ExportRange(ctx context.Context, from time.Time, to time.Time) (string, error) {
	lookup, err := s.dayLookup(ctx)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderRange(from, to, lookup)
}

func (s *ServiceImpl) ExportToFile(ctx context.Context, fy financial_year.FinancialYear) (string, error) {
	content, err := s.ExportYear(ctx, fy)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		log.Errorf("Error creating export directory %s: %v", s.exportDir, err)
		return "", fmt.Errorf("%w: %v", ErrExportFailure, err)
	}

	path := filepath.Join(s.exportDir, fy.ExportFileName())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Errorf("Error writing export file %s: %v", path, err)
		return "", fmt.Errorf("%w: %v", ErrExportFailure, err)
	}

	log.Infof("Exported financial year %s to %s", fy.DisplayString(), path)
	return path, nil
}

func (s *ServiceImpl) dayLookup(ctx context.Context) (DayLookup, error) {
	days, err := s.workDayService.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load work days: %w", err)
	}

	byDay := make(map[time.Time]workday.WorkDay, len(days))
	for _, day := range days {
		byDay[workday.DayKey(day.Date)] = day
	}

	return func(date time.Time) *workday.WorkDay {
		if day, ok := byDay[workday.DayKey(date)]; ok {
			return &day
		}
		return nil
	}, nil
}
