package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, "wfhlog.db", cfg.Database.Path)
	assert.Equal(t, "exports", cfg.Export.Directory)
	assert.Equal(t, 8.0, cfg.Defaults.HoursPerEntry)
	assert.False(t, cfg.Defaults.DisplayWeekends)
}

func TestLoadFromYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("port: 9090\ndb:\n  path: /tmp/test.db\ndefaults:\n  displayweekends: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.True(t, cfg.Defaults.DisplayWeekends)
	// Untouched keys keep their defaults.
	assert.Equal(t, "localhost", cfg.Host)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\n"), 0o644))
	t.Setenv("WFH_PORT", "7070")
	t.Setenv("WFH_EXPORT_DIRECTORY", "/tmp/wfh-exports")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "/tmp/wfh-exports", cfg.Export.Directory)
}

func TestLoadClampsHoursPerEntry(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"below minimum", "0.5", 1.0},
		{"above maximum", "16", 12.0},
		{"in range", "7.5", 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WFH_DEFAULTS_HOURSPERENTRY", tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Defaults.HoursPerEntry)
		})
	}
}
