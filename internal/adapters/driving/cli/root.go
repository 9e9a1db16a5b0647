// Package cli implements the fivewords command line.
//
// Commands are package-level cobra commands registered in init. Services are
// injected by cmd/fivewords through the Set* functions before Execute runs.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driving"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

// version is set by SetVersion from the build.
var version = "dev"

var (
	verbose   bool
	configDir string
)

var (
	solverService   driving.SolverService
	settingsService driving.SettingsService
	wordListFetcher Fetcher
	newWatcher      WatcherFactory
	wiring          WiringFunc
)

// Fetcher downloads a word list to a local path.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) (int64, error)
}

// FileWatcher calls onChange whenever the watched file settles after a change.
type FileWatcher interface {
	Run(ctx context.Context, onChange func()) error
	Target() string
}

// WatcherFactory starts watching path.
type WatcherFactory func(path string) (FileWatcher, error)

// WiringFunc builds and injects services once flags are parsed. configDir is
// the --config-dir value, empty for the default location.
type WiringFunc func(configDir string) error

var rootCmd = &cobra.Command{
	Use:   "fivewords",
	Short: "Find five words that use 25 distinct letters",
	Long: `fivewords searches a word list for sets of five five-letter words
in which no letter appears twice. Such a set covers 25 of the 26 letters.

Words that are not exactly five distinct letters a-z are ignored. Words
spelled with the same letters (anagrams) are searched once and reported
together.

Running fivewords without a subcommand is the same as "fivewords solve".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if wiring != nil {
			return wiring(configDir)
		}
		return nil
	},
	RunE: runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "settings directory (default ~/.fivewords)")
	addSolveFlags(rootCmd.Flags())
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetWiring registers the function that builds services after flag parsing.
func SetWiring(fn WiringFunc) {
	wiring = fn
}

// SetSolverService sets the solver used by solve, tui and mcp.
func SetSolverService(s driving.SolverService) {
	solverService = s
}

// SetSettingsService sets the settings service used by config and as the
// source of defaults for every other command.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetFetcher sets the word list downloader used by fetch.
func SetFetcher(f Fetcher) {
	wordListFetcher = f
}

// SetWatcherFactory sets how solve --watch observes the word list.
func SetWatcherFactory(f WatcherFactory) {
	newWatcher = f
}
