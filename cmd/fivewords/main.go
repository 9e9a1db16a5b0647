// Command fivewords finds sets of five words that use 25 distinct letters.
package main

import (
	"context"
	"fmt"
	"os"

	configfile "github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driven/config/file"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driven/output/text"
	wordfile "github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driven/wordlist/file"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driven/wordlist/remote"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driving/cli"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(wire)

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

// wire builds the adapters and injects the services into the CLI.
func wire(configDir string) error {
	store, err := configfile.NewSettingsStore(configDir)
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}

	cli.SetSettingsService(services.NewSettingsService(store))
	cli.SetSolverService(services.NewSolver(wordfile.NewSource(), text.NewSink()))
	cli.SetFetcher(remote.NewFetcher(nil, remote.DefaultRetryInterval, remote.DefaultAttempts))
	cli.SetWatcherFactory(func(path string) (cli.FileWatcher, error) {
		w, err := wordfile.NewWatcher(path, wordfile.DefaultDebounce)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	return nil
}
