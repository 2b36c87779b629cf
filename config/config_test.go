package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, settings string) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"settings.json":      settings,
		"character.json":     `{"name": "設楽翔也", "personality": "面倒見のいい兄貴分", "traits": ["優しい"], "speaking_style": {"tone": "ぶっきらぼう", "emoji_usage": "low", "common_phrases": ["忘れるなよ"]}}`,
		"reminders.json":     `{"daily_reminders": ["朝だぞ"]}`,
		"announcements.json": `{"motivational": ["頑張ろうぜ"]}`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

const validSettings = `{
	"command_prefix": "!syouya",
	"default_channel_id": "1234",
	"schedule": {
		"reminders": {"enabled": true, "hours": [9, 14, 18]},
		"announcements": {"enabled": true, "days": ["monday", "wednesday", "friday"], "hour": 12}
	}
}`

func TestLoad(t *testing.T) {
	dir := writeConfigDir(t, validSettings)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "!syouya", cfg.Settings.CommandPrefix)
	assert.Equal(t, "1234", cfg.Settings.DefaultChannelID)
	assert.Equal(t, []int{9, 14, 18}, cfg.Settings.Schedule.Reminders.Hours)
	require.NotNil(t, cfg.Settings.Schedule.Announcements.Hour)
	assert.Equal(t, 12, *cfg.Settings.Schedule.Announcements.Hour)
	assert.Equal(t, "設楽翔也", cfg.Character.Name)
	assert.Equal(t, []string{"daily_reminders"}, cfg.Reminders.Categories())
	assert.Equal(t, []string{"motivational"}, cfg.Announcements.Categories())
}

func TestLoadMissingFile(t *testing.T) {
	dir := writeConfigDir(t, validSettings)
	require.NoError(t, os.Remove(filepath.Join(dir, "reminders.json")))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := writeConfigDir(t, `{"command_prefix": `)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings string
	}{
		{
			name:     "empty prefix",
			settings: `{"command_prefix": "", "default_channel_id": "1234", "schedule": {"reminders": {}, "announcements": {}}}`,
		},
		{
			name:     "empty channel",
			settings: `{"command_prefix": "!syouya", "default_channel_id": "", "schedule": {"reminders": {}, "announcements": {}}}`,
		},
		{
			name:     "reminder hour out of range",
			settings: `{"command_prefix": "!syouya", "default_channel_id": "1234", "schedule": {"reminders": {"hours": [24]}, "announcements": {}}}`,
		},
		{
			name:     "announcement hour out of range",
			settings: `{"command_prefix": "!syouya", "default_channel_id": "1234", "schedule": {"reminders": {}, "announcements": {"hour": -1}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigDir(t, tt.settings)
			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyCharacterNameFails(t *testing.T) {
	dir := writeConfigDir(t, validSettings)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "character.json"), []byte(`{"name": ""}`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
