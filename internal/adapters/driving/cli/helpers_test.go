package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driven/storage/memory"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/services"
)

// fixtureWords has exactly one solution, DORFJ merges into FJORD, and two
// lines are rejected.
var fixtureWords = []string{"FJORD", "GUCKS", "NYMPH", "VIBEX", "WALTZ", "DORFJ", "hello", "cat"}

// testEnv wires in-memory adapters into the package-level services.
type testEnv struct {
	source   *memory.WordSource
	sink     *memory.ResultSink
	settings *services.SettingsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		source:   memory.NewWordSource(),
		sink:     memory.NewResultSink(),
		settings: services.NewSettingsService(memory.NewSettingsStore()),
	}
	SetSolverService(services.NewSolver(env.source, env.sink))
	SetSettingsService(env.settings)
	t.Cleanup(func() {
		SetSolverService(nil)
		SetSettingsService(nil)
		SetFetcher(nil)
		SetWatcherFactory(nil)
		SetWiring(nil)
	})
	return env
}

// resetFlags restores every flag in the command tree to its default, since
// flag values and Changed survive between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func countOf(s, sub string) int {
	return strings.Count(s, sub)
}
