package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const storageKey = "notificationSettings"

var ErrPersistence = errors.New("persistence failure")

type Repository interface {
	// Load returns the stored settings, or the defaults when nothing has
	// been saved yet.
	Load(ctx context.Context) (NotificationSettings, error)
	Save(ctx context.Context, settings NotificationSettings) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

type storedSettings struct {
	Enabled         bool `json:"enabled"`
	DayOfWeek       int  `json:"dayOfWeek"`
	Hour            int  `json:"hour"`
	Minute          int  `json:"minute"`
	DisplayWeekends bool `json:"displayWeekends"`
}

func (r *RepositoryImpl) Load(ctx context.Context) (NotificationSettings, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", storageKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultNotificationSettings(), nil
	}
	if err != nil {
		err := fmt.Errorf("%w: could not read notification settings: %v", ErrPersistence, err)
		log.Error(err)
		return NotificationSettings{}, err
	}

	var stored storedSettings
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		err := fmt.Errorf("%w: could not decode notification settings: %v", ErrPersistence, err)
		log.Error(err)
		return NotificationSettings{}, err
	}

	// Stored values pass through the clamping constructor so an edited or
	// out-of-range payload cannot surface invalid settings.
	return NewNotificationSettings(stored.Enabled, stored.DayOfWeek, stored.Hour, stored.Minute, stored.DisplayWeekends), nil
}

func (r *RepositoryImpl) Save(ctx context.Context, settings NotificationSettings) error {
	payload, err := json.Marshal(storedSettings{
		Enabled:         settings.Enabled,
		DayOfWeek:       settings.DayOfWeek,
		Hour:            settings.Hour,
		Minute:          settings.Minute,
		DisplayWeekends: settings.DisplayWeekends,
	})
	if err != nil {
		err := fmt.Errorf("%w: could not encode notification settings: %v", ErrPersistence, err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, datetime('now'))
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, storageKey, string(payload)); err != nil {
		err := fmt.Errorf("%w: could not write notification settings: %v", ErrPersistence, err)
		log.Error(err)
		return err
	}
	return nil
}
