package mcp

import (
	"context"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

// mockSolverService is a mock implementation of driving.SolverService.
type mockSolverService struct {
	report *domain.Report
	err    error

	words []string
	opts  domain.SolveOptions
}

func (m *mockSolverService) Solve(_ context.Context, opts domain.SolveOptions) (*domain.Report, error) {
	m.opts = opts
	return m.report, m.err
}

func (m *mockSolverService) SolveWords(
	_ context.Context,
	words []string,
	opts domain.SearchOptions,
) (*domain.Report, error) {
	m.words = words
	m.opts = domain.SolveOptions{Search: opts}
	return m.report, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return "(mock)"
}

func word(forms ...string) *domain.WordEntry {
	letters, err := domain.ParseLetters(forms[0])
	if err != nil {
		panic(err)
	}
	return &domain.WordEntry{Letters: letters, Forms: forms}
}

func fixtureReport() *domain.Report {
	return &domain.Report{
		RunID: "run-1",
		Stats: domain.DictionaryStats{Total: 7, Ignored: 1, Distinct: 5, Merged: 1},
		Outcome: domain.SearchOutcome{
			Candidates: 5,
			Solutions: []domain.Solution{
				{word("FJORD", "DORFJ"), word("GUCKS"), word("NYMPH"), word("VIBEX"), word("WALTZ")},
			},
		},
	}
}
