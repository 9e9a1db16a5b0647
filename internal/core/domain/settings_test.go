package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, DefaultInputPath, settings.Paths.Input)
	assert.Equal(t, DefaultOutputPath, settings.Paths.Output)
	assert.Equal(t, 1, settings.Search.Workers)
	assert.True(t, settings.Display.Progress)
	assert.NoError(t, settings.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"empty input", func(s *AppSettings) { s.Paths.Input = "" }},
		{"blank output", func(s *AppSettings) { s.Paths.Output = "  " }},
		{"negative workers", func(s *AppSettings) { s.Search.Workers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAppSettings()
			tt.mutate(&settings)

			assert.ErrorIs(t, settings.Validate(), ErrInvalidSetting)
		})
	}
}

func TestAppSettings_Apply(t *testing.T) {
	settings := DefaultAppSettings()

	require.NoError(t, settings.Apply(SettingInputPath, "/tmp/words.txt"))
	require.NoError(t, settings.Apply(SettingOutputPath, "/tmp/out.txt"))
	require.NoError(t, settings.Apply(SettingWorkers, "8"))
	require.NoError(t, settings.Apply(SettingProgress, "false"))

	assert.Equal(t, "/tmp/words.txt", settings.Paths.Input)
	assert.Equal(t, "/tmp/out.txt", settings.Paths.Output)
	assert.Equal(t, 8, settings.Search.Workers)
	assert.False(t, settings.Display.Progress)
}

func TestAppSettings_ApplyRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "fast"},
		{"workers not a number", SettingWorkers, "many"},
		{"negative workers", SettingWorkers, "-2"},
		{"progress not a bool", SettingProgress, "sometimes"},
		{"empty input", SettingInputPath, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAppSettings()
			assert.ErrorIs(t, settings.Apply(tt.key, tt.value), ErrInvalidSetting)
		})
	}
}

func TestSettingKeys(t *testing.T) {
	settings := DefaultAppSettings()
	for _, key := range SettingKeys() {
		t.Run(key, func(t *testing.T) {
			value := "1"
			if key == SettingProgress {
				value = "true"
			}
			assert.NoError(t, settings.Apply(key, value))
		})
	}
}
