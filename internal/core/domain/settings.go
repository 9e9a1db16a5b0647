package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Default locations, relative to the working directory.
const (
	DefaultInputPath  = "word_list.txt"
	DefaultOutputPath = "solutions.txt"
)

// WordListURL is a known-good source for a five letter word list.
const WordListURL = "https://gist.githubusercontent.com/cfreshman/cdcdf777450c5b5301e439061d29694c/raw/b8375870720504ecf89c1970ea4532454f12de94/wordle-allowed-guesses.txt"

// Settings keys, dotted as in the TOML file.
const (
	SettingInputPath  = "paths.input"
	SettingOutputPath = "paths.output"
	SettingWorkers    = "search.workers"
	SettingProgress   = "display.progress"
)

// PathSettings locates the word list and the result dump.
type PathSettings struct {
	Input  string
	Output string
}

// SearchSettings tunes the search engine.
type SearchSettings struct {
	// Workers is the number of goroutines sharing the outer loop.
	// 1 runs the single-threaded reference search, 0 uses every CPU.
	Workers int
}

// DisplaySettings controls terminal output.
type DisplaySettings struct {
	// Progress enables the progress bar when stderr is a terminal.
	Progress bool
}

// AppSettings is the persisted configuration.
type AppSettings struct {
	Paths   PathSettings
	Search  SearchSettings
	Display DisplaySettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Paths: PathSettings{
			Input:  DefaultInputPath,
			Output: DefaultOutputPath,
		},
		Search: SearchSettings{
			Workers: 1,
		},
		Display: DisplaySettings{
			Progress: true,
		},
	}
}

// Validate checks values that cannot be defaulted.
func (s *AppSettings) Validate() error {
	if strings.TrimSpace(s.Paths.Input) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSetting, SettingInputPath)
	}
	if strings.TrimSpace(s.Paths.Output) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSetting, SettingOutputPath)
	}
	if s.Search.Workers < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidSetting, SettingWorkers)
	}
	return nil
}

// Apply sets the value for a dotted key, parsing it from text.
func (s *AppSettings) Apply(key, value string) error {
	switch key {
	case SettingInputPath:
		s.Paths.Input = value
	case SettingOutputPath:
		s.Paths.Output = value
	case SettingWorkers:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not a number", ErrInvalidSetting, key, value)
		}
		s.Search.Workers = n
	case SettingProgress:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidSetting, key, value)
		}
		s.Display.Progress = b
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidSetting, key)
	}
	return s.Validate()
}

// SettingKeys lists every key accepted by Apply.
func SettingKeys() []string {
	return []string{SettingInputPath, SettingOutputPath, SettingWorkers, SettingProgress}
}
