package services

import (
	"fmt"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get retrieves current settings. Missing or invalid stored values fall back
// to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings, err := s.store.Load(defaults)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if settings.Paths.Input == "" {
		settings.Paths.Input = defaults.Paths.Input
	}
	if settings.Paths.Output == "" {
		settings.Paths.Output = defaults.Paths.Output
	}
	if settings.Search.Workers < 0 {
		settings.Search.Workers = defaults.Search.Workers
	}

	return &settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(*settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Set updates one key and persists the result.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if err := settings.Apply(key, value); err != nil {
		return err
	}
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.store.Path()
}
