package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfhlog/wfhlog/internal/utils"
)

func setupSettingsHandler() (*SettingsHandler, *StubRepository, *utils.MockClock) {
	repo := NewStubRepository()
	clock := &utils.MockClock{}
	// 2025-01-15 is a Wednesday.
	clock.SetNow(time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC))
	return NewSettingsHandler(NewService(repo), clock), repo, clock
}

func TestSettingsHandler_Get(t *testing.T) {
	handler, repo, _ := setupSettingsHandler()
	repo.SetStored(NewNotificationSettings(true, 5, 16, 0, false))

	request := httptest.NewRequest(http.MethodGet, "/api/settings/notifications", nil)
	response := httptest.NewRecorder()
	handler.GetNotificationSettings(response, request)

	require.Equal(t, http.StatusOK, response.Code)
	var dto NotificationSettingsDTO
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dto))
	assert.Equal(t, "Friday", dto.DayName)
	assert.Equal(t, "16:00", dto.Time)
	require.NotNil(t, dto.NextScheduled)
	assert.Equal(t, "2025-01-17T16:00:00Z", *dto.NextScheduled)
}

func TestSettingsHandler_GetDisabledOmitsNextScheduled(t *testing.T) {
	handler, _, _ := setupSettingsHandler()

	request := httptest.NewRequest(http.MethodGet, "/api/settings/notifications", nil)
	response := httptest.NewRecorder()
	handler.GetNotificationSettings(response, request)

	require.Equal(t, http.StatusOK, response.Code)
	var dto NotificationSettingsDTO
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dto))
	assert.False(t, dto.Enabled)
	assert.Nil(t, dto.NextScheduled)
}

func TestSettingsHandler_UpdateClampsAndReturnsStored(t *testing.T) {
	handler, _, _ := setupSettingsHandler()

	body := `{"enabled":true,"dayOfWeek":9,"hour":30,"minute":75,"displayWeekends":true}`
	request := httptest.NewRequest(http.MethodPut, "/api/settings/notifications", strings.NewReader(body))
	response := httptest.NewRecorder()
	handler.UpdateNotificationSettings(response, request)

	require.Equal(t, http.StatusOK, response.Code)
	var dto NotificationSettingsDTO
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dto))
	assert.Equal(t, 7, dto.DayOfWeek)
	assert.Equal(t, 23, dto.Hour)
	assert.Equal(t, 59, dto.Minute)
	assert.True(t, dto.DisplayWeekends)
}

func TestSettingsHandler_UpdateRejectsMalformedBody(t *testing.T) {
	handler, _, _ := setupSettingsHandler()

	request := httptest.NewRequest(http.MethodPut, "/api/settings/notifications", strings.NewReader("{"))
	response := httptest.NewRecorder()
	handler.UpdateNotificationSettings(response, request)

	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestSettingsHandler_Reset(t *testing.T) {
	handler, repo, _ := setupSettingsHandler()
	repo.SetStored(NewNotificationSettings(true, 2, 8, 15, true))

	request := httptest.NewRequest(http.MethodPost, "/api/settings/notifications/reset", nil)
	response := httptest.NewRecorder()
	handler.ResetNotificationSettings(response, request)

	require.Equal(t, http.StatusOK, response.Code)
	var dto NotificationSettingsDTO
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dto))
	defaults := DefaultNotificationSettings()
	assert.Equal(t, defaults.Enabled, dto.Enabled)
	assert.Equal(t, defaults.DayOfWeek, dto.DayOfWeek)
	assert.Equal(t, defaults.Hour, dto.Hour)
}
