package memory

import (
	"sync"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore for testing.
type SettingsStore struct {
	mu       sync.RWMutex
	settings *domain.AppSettings
}

// NewSettingsStore creates a store with nothing saved.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// Load returns the saved settings, or base when nothing was saved.
func (s *SettingsStore) Load(base domain.AppSettings) (domain.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return base, nil
	}
	return *s.settings, nil
}

// Save replaces the stored settings.
func (s *SettingsStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

// Path returns a placeholder; nothing is written to disk.
func (s *SettingsStore) Path() string {
	return "(memory)"
}
