package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Calories.DailyGoal)
	assert.False(t, cfg.Storage.Persist)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Drafts", cfg.Share.Email.Mailbox)
	assert.False(t, cfg.Share.Email.Configured())
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
calories:
  daily_goal: 1800
storage:
  persist: true
  path: /tmp/kitchen.db
share:
  email:
    host: imap.example.com
    username: me@example.com
    to: family@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1800, cfg.Calories.DailyGoal)
	assert.True(t, cfg.Storage.Persist)
	assert.Equal(t, "/tmp/kitchen.db", cfg.Storage.Path)
	assert.True(t, cfg.Share.Email.Configured())
	assert.Equal(t, "me@example.com", cfg.Share.Email.From, "from falls back to username")
	assert.Equal(t, "993", cfg.Share.Email.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("KITCHEN_CALORIES_DAILY_GOAL", "2500")
	t.Setenv("KITCHEN_STORAGE_PERSIST", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Calories.DailyGoal)
	assert.True(t, cfg.Storage.Persist)
}

func TestLoadConfig_RejectsNonPositiveGoal(t *testing.T) {
	t.Setenv("KITCHEN_CALORIES_DAILY_GOAL", "0")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultAppConfig()
	cfg.Calories.DailyGoal = 2200
	cfg.Share.Email.Host = "imap.example.com"

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2200, loaded.Calories.DailyGoal)
	assert.Equal(t, "imap.example.com", loaded.Share.Email.Host)
}
