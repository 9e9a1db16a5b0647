package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driven/storage/memory"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

type failingSource struct{ err error }

func (s *failingSource) ReadWords(context.Context, string) ([]string, error) {
	return nil, s.err
}

func TestSolver_Solve(t *testing.T) {
	source := memory.NewWordSource()
	source.Put("words.txt", append([]string{"HELLO", "waltz"}, fixtureWords...))
	sink := memory.NewResultSink()
	solver := NewSolver(source, sink)

	report, err := solver.Solve(context.Background(), domain.SolveOptions{
		Input:  "words.txt",
		Output: "solutions.txt",
		Search: domain.SearchOptions{Workers: 1},
	})

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "words.txt", report.Input)
	assert.Equal(t, "solutions.txt", report.Output)
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)

	assert.Equal(t, 7, report.Stats.Total)
	assert.Equal(t, 1, report.Stats.Ignored)
	assert.Equal(t, 1, report.Stats.Merged)
	assert.Equal(t, 5, report.Stats.Distinct)
	require.Len(t, report.Solutions(), 1)

	written, ok := sink.Solutions("solutions.txt")
	require.True(t, ok)
	assert.Equal(t, report.Solutions(), written)
}

func TestSolver_SolveWithoutOutputSkipsSink(t *testing.T) {
	source := memory.NewWordSource()
	source.Put("words.txt", fixtureWords)
	sink := memory.NewResultSink()
	solver := NewSolver(source, sink)

	report, err := solver.Solve(context.Background(), domain.SolveOptions{Input: "words.txt"})

	require.NoError(t, err)
	assert.Empty(t, report.Output)
	_, ok := sink.Solutions("")
	assert.False(t, ok)
}

func TestSolver_SourceUnavailable(t *testing.T) {
	cause := errors.New("no such file")
	sink := memory.NewResultSink()
	solver := NewSolver(&failingSource{err: cause}, sink)

	report, err := solver.Solve(context.Background(), domain.SolveOptions{Input: "x", Output: "y"})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)
	_, written := sink.Solutions("y")
	assert.False(t, written)
}

func TestSolver_NilSource(t *testing.T) {
	solver := NewSolver(nil, nil)

	_, err := solver.Solve(context.Background(), domain.SolveOptions{Input: "x"})

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestSolver_SinkUnavailableKeepsReport(t *testing.T) {
	source := memory.NewWordSource()
	source.Put("words.txt", fixtureWords)
	sink := memory.NewResultSink()
	sink.Close()
	solver := NewSolver(source, sink)

	report, err := solver.Solve(context.Background(), domain.SolveOptions{Input: "words.txt", Output: "out"})

	assert.ErrorIs(t, err, domain.ErrSinkUnavailable)
	assert.ErrorIs(t, err, memory.ErrSinkClosed)
	require.NotNil(t, report)
	assert.Len(t, report.Solutions(), 1)
	assert.Empty(t, report.Output)
}

func TestSolver_TooFewWords(t *testing.T) {
	source := memory.NewWordSource()
	source.Put("words.txt", []string{"fjord", "gucks", "HELLO"})
	sink := memory.NewResultSink()
	solver := NewSolver(source, sink)

	report, err := solver.Solve(context.Background(), domain.SolveOptions{Input: "words.txt", Output: "out"})

	require.NoError(t, err)
	assert.True(t, report.Outcome.TooFewWords)
	assert.Len(t, report.Outcome.Words, 2)
	written, ok := sink.Solutions("out")
	assert.True(t, ok)
	assert.Empty(t, written)
}

func TestSolver_DictionaryHookRunsBeforeSearch(t *testing.T) {
	solver := NewSolver(nil, nil)
	var order []string

	_, err := solver.SolveWords(context.Background(), fixtureWords, domain.SearchOptions{
		Workers: 1,
		OnDictionary: func(stats domain.DictionaryStats) {
			order = append(order, "dictionary")
			assert.Equal(t, 5, stats.Distinct)
		},
		OnProgress: func(done, _ int) {
			if done == 0 {
				order = append(order, "search")
			}
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"dictionary", "search"}, order)
}

func TestSolver_SolveWords(t *testing.T) {
	solver := NewSolver(nil, nil)

	report, err := solver.SolveWords(context.Background(), fixtureWords, domain.SearchOptions{Workers: 2})

	require.NoError(t, err)
	assert.Len(t, report.Solutions(), 1)
	assert.Empty(t, report.Input)
}

func TestSolver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	solver := NewSolver(nil, nil)

	report, err := solver.SolveWords(ctx, fixtureWords, domain.SearchOptions{Workers: 1})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}
