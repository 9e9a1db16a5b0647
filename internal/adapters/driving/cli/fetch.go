package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

var (
	fetchURL    string
	fetchOutput string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a word list",
	Long: `Downloads a word list to the configured input path, replacing any
existing file only once the download has completed.

The default list is the set of five-letter words used by Wordle.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", domain.WordListURL, "word list URL")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "destination file (default: configured input path)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if wordListFetcher == nil {
		return errors.New("fetcher not configured")
	}

	dest := fetchOutput
	if dest == "" {
		settings, err := currentSettings()
		if err != nil {
			return err
		}
		dest = settings.Paths.Input
	}

	n, err := wordListFetcher.Fetch(cmd.Context(), fetchURL, dest)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	cmd.Printf("Downloaded %s to %s\n", humanize.Bytes(uint64(n)), dest)
	return nil
}
