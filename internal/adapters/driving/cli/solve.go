package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

var solveFlags struct {
	input      string
	output     string
	workers    int
	noProgress bool
	watch      bool
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search the word list for five disjoint words",
	Long: `Reads the word list, reports how many words were ignored or merged as
anagrams, then lists every set of five words that share no letter.

Solutions are printed and written to the output file, five lines per
solution with a blank line in between.

Examples:
  fivewords solve
  fivewords solve -i words_alpha.txt -o out.txt --workers 0
  fivewords solve --watch`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	addSolveFlags(solveCmd.Flags())
	rootCmd.AddCommand(solveCmd)
}

// addSolveFlags registers the solve flags on fs. The root command shares
// them so that a bare "fivewords" solves.
func addSolveFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&solveFlags.input, "input", "i", "", "word list file (default from settings)")
	fs.StringVarP(&solveFlags.output, "output", "o", "", "solutions file (default from settings)")
	fs.IntVarP(&solveFlags.workers, "workers", "w", 0, "parallel search workers, 0 = one per CPU (default from settings)")
	fs.BoolVar(&solveFlags.noProgress, "no-progress", false, "do not draw the progress bar")
	fs.BoolVar(&solveFlags.watch, "watch", false, "solve again whenever the word list changes")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	if solverService == nil {
		return errors.New("solver service not configured")
	}

	opts, showProgress, err := resolveSolveOptions(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if solveFlags.watch {
		return watchAndSolve(ctx, cmd, opts, showProgress)
	}
	return solveOnce(ctx, cmd, opts, showProgress)
}

// resolveSolveOptions layers explicitly set flags over the stored settings.
func resolveSolveOptions(cmd *cobra.Command) (domain.SolveOptions, bool, error) {
	settings, err := currentSettings()
	if err != nil {
		return domain.SolveOptions{}, false, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		settings.Paths.Input = solveFlags.input
	}
	if flags.Changed("output") {
		settings.Paths.Output = solveFlags.output
	}
	if flags.Changed("workers") {
		if solveFlags.workers < 0 {
			return domain.SolveOptions{}, false, fmt.Errorf("%w: --workers must not be negative", domain.ErrInvalidSetting)
		}
		settings.Search.Workers = solveFlags.workers
	}
	if flags.Changed("no-progress") && solveFlags.noProgress {
		settings.Display.Progress = false
	}

	return solveOptionsFrom(settings), settings.Display.Progress, nil
}

// currentSettings returns the stored settings, or the defaults when no
// settings service is configured.
func currentSettings() (domain.AppSettings, error) {
	if settingsService == nil {
		return domain.DefaultAppSettings(), nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return *settings, nil
}

func solveOptionsFrom(settings domain.AppSettings) domain.SolveOptions {
	return domain.SolveOptions{
		Input:  settings.Paths.Input,
		Output: settings.Paths.Output,
		Search: domain.SearchOptions{Workers: settings.Search.Workers},
	}
}

func solveOnce(ctx context.Context, cmd *cobra.Command, opts domain.SolveOptions, showProgress bool) error {
	bar := newProgressBar(cmd.ErrOrStderr(), showProgress)

	opts.Search.OnDictionary = func(stats domain.DictionaryStats) {
		printSummary(cmd, stats)
	}
	opts.Search.OnProgress = bar.Update

	report, err := solverService.Solve(ctx, opts)
	bar.Finish()

	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			printWordListHelp(cmd, opts.Input)
			return err
		}
		if report == nil {
			return err
		}
	}

	printReport(cmd, report)
	if err != nil {
		return err
	}
	if report.Output != "" {
		cmd.Printf("Wrote solutions to %s\n", report.Output)
	}
	return nil
}

func watchAndSolve(ctx context.Context, cmd *cobra.Command, opts domain.SolveOptions, showProgress bool) error {
	if newWatcher == nil {
		return errors.New("file watcher not configured")
	}

	w, err := newWatcher(opts.Input)
	if err != nil {
		return err
	}

	if err := solveOnce(ctx, cmd, opts, showProgress); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		cmd.Printf("Solve failed: %v\n", err)
	}

	cmd.Printf("\nWatching %s for changes (Ctrl+C to stop)\n", w.Target())
	return w.Run(ctx, func() {
		cmd.Printf("\n%s changed, solving again\n\n", w.Target())
		if err := solveOnce(ctx, cmd, opts, showProgress); err != nil && ctx.Err() == nil {
			logger.Warn("Solve after change failed: %v", err)
			cmd.Printf("Solve failed: %v\n", err)
		}
	})
}

func printSummary(cmd *cobra.Command, stats domain.DictionaryStats) {
	cmd.Printf("Read %s words: %s ignored, %s valid\n",
		humanize.Comma(int64(stats.Total)),
		humanize.Comma(int64(stats.Ignored)),
		humanize.Comma(int64(stats.Valid())))

	for _, kind := range domain.ValidationErrors() {
		if n := stats.Rejected[kind]; n > 0 {
			cmd.Printf("  %s: %s\n", kind, humanize.Comma(int64(n)))
		}
	}

	cmd.Printf("Merged %s anagrams, %s distinct letter sets to search\n",
		humanize.Comma(int64(stats.Merged)),
		humanize.Comma(int64(stats.Distinct)))
}

func printReport(cmd *cobra.Command, report *domain.Report) {
	cmd.Println()

	if report.Outcome.TooFewWords {
		cmd.Printf("Only %d distinct words, at least %d are needed. Words found:\n",
			len(report.Outcome.Words), domain.SolutionSize)
		for _, w := range report.Outcome.Words {
			cmd.Printf("  %s\n", w)
		}
		return
	}

	solutions := report.Solutions()
	for i, sol := range solutions {
		words := make([]string, 0, len(sol))
		for _, w := range sol {
			words = append(words, w.String())
		}
		cmd.Printf("%d. %s  (missing %s)\n", i+1, strings.Join(words, " | "), sol.Missing())
	}

	switch len(solutions) {
	case 0:
		cmd.Println("No solutions found.")
	case 1:
		cmd.Println("\nFound 1 solution.")
	default:
		cmd.Printf("\nFound %s solutions.\n", humanize.Comma(int64(len(solutions))))
	}
	cmd.Printf("Built dictionary in %s, searched in %s\n",
		report.BuildDuration.Round(time.Millisecond),
		report.SearchDuration.Round(time.Millisecond))
}

func printWordListHelp(cmd *cobra.Command, input string) {
	cmd.Printf("Cannot read the word list %q.\n", input)
	cmd.Println("Download one from:")
	cmd.Printf("  %s\n", domain.WordListURL)
	cmd.Println("or run: fivewords fetch")
}
