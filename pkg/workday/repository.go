package workday

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// storageKey is the key-value row holding the serialized record collection.
const storageKey = "workDays"

// ErrPersistence wraps store failures (serialization errors, storage
// unavailable). Callers surface it to the user; a missing collection is not
// an error and yields an empty slice instead.
var ErrPersistence = errors.New("persistence failure")

type Repository interface {
	// LoadAll returns every stored record. A store that has never been
	// written to returns an empty collection, not an error.
	LoadAll(ctx context.Context) ([]WorkDay, error)
	// SaveAll replaces the whole stored collection.
	SaveAll(ctx context.Context, days []WorkDay) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// storedWorkDay is the serialization shape. Current records carry the
// workEntries mapping; records written before holiday/sick tracking only
// have the flat hour fields, so the decoder falls back to those.
type storedWorkDay struct {
	Date        string             `json:"date"`
	WorkEntries map[string]float64 `json:"workEntries,omitempty"`

	// Legacy flat fields, read-only for backward compatibility.
	HomeHours   *float64 `json:"homeHours,omitempty"`
	OfficeHours *float64 `json:"officeHours,omitempty"`
}

const dateLayout = "2006-01-02"

func (r *RepositoryImpl) LoadAll(ctx context.Context) ([]WorkDay, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", storageKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []WorkDay{}, nil
	}
	if err != nil {
		err := fmt.Errorf("%w: could not read stored work days: %v", ErrPersistence, err)
		log.Error(err)
		return nil, err
	}

	days, err := decodeWorkDays([]byte(payload))
	if err != nil {
		err := fmt.Errorf("%w: could not decode stored work days: %v", ErrPersistence, err)
		log.Error(err)
		return nil, err
	}
	return days, nil
}

func (r *RepositoryImpl) SaveAll(ctx context.Context, days []WorkDay) error {
	payload, err := encodeWorkDays(days)
	if err != nil {
		err := fmt.Errorf("%w: could not encode work days: %v", ErrPersistence, err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, datetime('now'))
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, storageKey, string(payload)); err != nil {
		err := fmt.Errorf("%w: could not write work days: %v", ErrPersistence, err)
		log.Error(err)
		return err
	}
	return nil
}

func encodeWorkDays(days []WorkDay) ([]byte, error) {
	stored := make([]storedWorkDay, 0, len(days))
	for _, day := range days {
		entries := make(map[string]float64, len(day.Entries))
		for t, hours := range day.Entries {
			if hours > 0 {
				entries[string(t)] = hours
			}
		}
		stored = append(stored, storedWorkDay{
			Date:        DayKey(day.Date).Format(dateLayout),
			WorkEntries: entries,
		})
	}
	return json.Marshal(stored)
}

func decodeWorkDays(payload []byte) ([]WorkDay, error) {
	var stored []storedWorkDay
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, err
	}

	days := make([]WorkDay, 0, len(stored))
	for _, s := range stored {
		date, err := parseStoredDate(s.Date)
		if err != nil {
			return nil, err
		}
		day := New(date)

		if len(s.WorkEntries) > 0 {
			for name, hours := range s.WorkEntries {
				t, err := ParseWorkType(name)
				if err != nil {
					return nil, err
				}
				day.SetHours(t, hours)
			}
		} else {
			// Legacy record: synthesize the mapping from whichever flat
			// fields are present and positive.
			if s.HomeHours != nil {
				day.SetHours(Home, *s.HomeHours)
			}
			if s.OfficeHours != nil {
				day.SetHours(Office, *s.OfficeHours)
			}
		}
		days = append(days, day)
	}
	return days, nil
}

func parseStoredDate(s string) (time.Time, error) {
	if date, err := time.Parse(dateLayout, s); err == nil {
		return DayKey(date), nil
	}
	// Older exports from the mobile app wrote full timestamps.
	date, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse stored date %q: %w", s, err)
	}
	return DayKey(date), nil
}
