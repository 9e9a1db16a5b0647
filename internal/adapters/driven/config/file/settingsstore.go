package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// FileName is the settings file inside the config directory.
const FileName = "config.toml"

// document mirrors the TOML layout. Pointers tell "unset" apart from zero.
type document struct {
	Paths   pathsTable   `toml:"paths"`
	Search  searchTable  `toml:"search"`
	Display displayTable `toml:"display"`
}

type pathsTable struct {
	Input  string `toml:"input,omitempty"`
	Output string `toml:"output,omitempty"`
}

type searchTable struct {
	Workers *int `toml:"workers,omitempty"`
}

type displayTable struct {
	Progress *bool `toml:"progress,omitempty"`
}

// SettingsStore keeps settings in a TOML file:
//
//	[paths]
//	input = "word_list.txt"
//	output = "solutions.txt"
//
//	[search]
//	workers = 1
//
//	[display]
//	progress = true
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a TOML settings store.
// If configDir is empty, defaults to ~/.fivewords/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".fivewords")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{filePath: filepath.Join(configDir, FileName)}, nil
}

// Load overlays the values present in the file onto base. A missing file
// yields base unchanged.
func (s *SettingsStore) Load(base domain.AppSettings) (domain.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, err
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return base, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	settings := base
	if doc.Paths.Input != "" {
		settings.Paths.Input = doc.Paths.Input
	}
	if doc.Paths.Output != "" {
		settings.Paths.Output = doc.Paths.Output
	}
	if doc.Search.Workers != nil {
		settings.Search.Workers = *doc.Search.Workers
	}
	if doc.Display.Progress != nil {
		settings.Display.Progress = *doc.Display.Progress
	}
	return settings, nil
}

// Save writes every setting to the file.
func (s *SettingsStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workers := settings.Search.Workers
	progress := settings.Display.Progress
	doc := document{
		Paths:   pathsTable{Input: settings.Paths.Input, Output: settings.Paths.Output},
		Search:  searchTable{Workers: &workers},
		Display: displayTable{Progress: &progress},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
