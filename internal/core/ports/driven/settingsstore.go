package driven

import "github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"

// SettingsStore persists application settings.
// Implementations handle the file format; defaults are applied by the core.
type SettingsStore interface {
	// Load reads the stored settings on top of base. Keys that are not
	// stored keep the value from base.
	Load(base domain.AppSettings) (domain.AppSettings, error)

	// Save replaces the stored settings.
	Save(settings domain.AppSettings) error

	// Path returns where the settings live, for display.
	Path() string
}
