package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

func TestServer_handleSolveWords(t *testing.T) {
	ctx := context.Background()

	t.Run("returns solutions", func(t *testing.T) {
		solver := &mockSolverService{report: fixtureReport()}
		server, err := NewServer(&Ports{Solver: solver})
		require.NoError(t, err)

		input := SolveWordsInput{Words: []string{"fjord", "gucks"}, Workers: 2}
		_, output, err := server.handleSolveWords(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, []string{"fjord", "gucks"}, solver.words)
		assert.Equal(t, 2, solver.opts.Search.Workers)
		assert.Equal(t, "run-1", output.RunID)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Solutions, 1)
		assert.Equal(t, "q", output.Solutions[0].Missing)
		require.Len(t, output.Solutions[0].Words, 5)
		assert.Equal(t, []string{"FJORD", "DORFJ"}, output.Solutions[0].Words[0].Forms)
		assert.Equal(t, "dfjor", output.Solutions[0].Words[0].Letters)
		assert.Equal(t, StatsOutput{Total: 7, Ignored: 1, Distinct: 5, Merged: 1}, output.Stats)
		assert.Same(t, solver.report, server.latest())
	})

	t.Run("empty words is rejected", func(t *testing.T) {
		server, err := NewServer(&Ports{Solver: &mockSolverService{}})
		require.NoError(t, err)

		_, _, err = server.handleSolveWords(ctx, nil, SolveWordsInput{})

		assert.ErrorIs(t, err, ErrNoWords)
	})

	t.Run("too few words lists the survivors", func(t *testing.T) {
		solver := &mockSolverService{report: &domain.Report{
			Outcome: domain.SearchOutcome{
				TooFewWords: true,
				Words:       []*domain.WordEntry{word("FJORD")},
			},
		}}
		server, err := NewServer(&Ports{Solver: solver})
		require.NoError(t, err)

		_, output, err := server.handleSolveWords(ctx, nil, SolveWordsInput{Words: []string{"fjord"}})

		require.NoError(t, err)
		assert.True(t, output.TooFewWords)
		assert.Zero(t, output.Count)
		require.Len(t, output.Words, 1)
		assert.Equal(t, []string{"FJORD"}, output.Words[0].Forms)
	})

	t.Run("returns error on solver failure", func(t *testing.T) {
		solver := &mockSolverService{err: errors.New("search failed")}
		server, err := NewServer(&Ports{Solver: solver})
		require.NoError(t, err)

		_, _, err = server.handleSolveWords(ctx, nil, SolveWordsInput{Words: []string{"fjord"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
		assert.Nil(t, server.latest())
	})
}

func TestServer_handleSolveFile(t *testing.T) {
	ctx := context.Background()

	t.Run("uses given path and writes nothing", func(t *testing.T) {
		solver := &mockSolverService{report: fixtureReport()}
		server, err := NewServer(&Ports{Solver: solver})
		require.NoError(t, err)

		_, output, err := server.handleSolveFile(ctx, nil, SolveFileInput{Path: "/data/words.txt"})

		require.NoError(t, err)
		assert.Equal(t, "/data/words.txt", solver.opts.Input)
		assert.Empty(t, solver.opts.Output)
		assert.Equal(t, 1, output.Count)
	})

	t.Run("falls back to configured input", func(t *testing.T) {
		settings := domain.DefaultAppSettings()
		settings.Paths.Input = "/configured/words.txt"
		solver := &mockSolverService{report: fixtureReport()}
		server, err := NewServer(&Ports{Solver: solver, Settings: &mockSettingsService{settings: &settings}})
		require.NoError(t, err)

		_, _, err = server.handleSolveFile(ctx, nil, SolveFileInput{})

		require.NoError(t, err)
		assert.Equal(t, "/configured/words.txt", solver.opts.Input)
	})

	t.Run("falls back to default without settings", func(t *testing.T) {
		solver := &mockSolverService{report: fixtureReport()}
		server, err := NewServer(&Ports{Solver: solver})
		require.NoError(t, err)

		_, _, err = server.handleSolveFile(ctx, nil, SolveFileInput{})

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultInputPath, solver.opts.Input)
	})

	t.Run("falls back to default when settings fail", func(t *testing.T) {
		solver := &mockSolverService{report: fixtureReport()}
		server, err := NewServer(&Ports{Solver: solver, Settings: &mockSettingsService{err: errors.New("broken")}})
		require.NoError(t, err)

		_, _, err = server.handleSolveFile(ctx, nil, SolveFileInput{})

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultInputPath, solver.opts.Input)
	})

	t.Run("unavailable word list", func(t *testing.T) {
		solver := &mockSolverService{err: domain.ErrSourceUnavailable}
		server, err := NewServer(&Ports{Solver: solver})
		require.NoError(t, err)

		_, _, err = server.handleSolveFile(ctx, nil, SolveFileInput{Path: "missing.txt"})

		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})
}

func TestServer_handleCheckWord(t *testing.T) {
	server, err := NewServer(&Ports{Solver: &mockSolverService{}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		word    string
		valid   bool
		letters string
		reason  string
	}{
		{"valid", "fjord", true, "dfjor", ""},
		{"duplicate letter", "hello", false, "", domain.ErrDuplicateLetter.Error()},
		{"too short", "word", false, "", domain.ErrWrongLength.Error()},
		{"mixed case", "Fjord", true, "dfjor", ""},
		{"digit", "fj0rd", false, "", domain.ErrUnrecognizedCharacter.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleCheckWord(context.Background(), nil, CheckWordInput{Word: tt.word})

			require.NoError(t, err)
			assert.Equal(t, tt.valid, output.Valid)
			assert.Equal(t, tt.letters, output.Letters)
			assert.Equal(t, tt.reason, output.Reason)
		})
	}
}
