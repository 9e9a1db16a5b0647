package driving

import "github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save persists settings after validating them.
	Save(settings *domain.AppSettings) error

	// Set updates a single dotted key, e.g. "search.workers".
	Set(key, value string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
