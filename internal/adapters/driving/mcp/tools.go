package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

// SolveWordsInput is the input schema for the solve_words tool.
type SolveWordsInput struct {
	Words   []string `json:"words" jsonschema:"candidate words; only words of five distinct letters a-z (any case) are kept"`
	Workers int      `json:"workers,omitempty" jsonschema:"parallel search workers (0 = one per CPU)"`
}

// SolveFileInput is the input schema for the solve_file tool.
type SolveFileInput struct {
	Path    string `json:"path,omitempty" jsonschema:"word list file on the server (default: configured input path)"`
	Workers int    `json:"workers,omitempty" jsonschema:"parallel search workers (0 = one per CPU)"`
}

// CheckWordInput is the input schema for the check_word tool.
type CheckWordInput struct {
	Word string `json:"word" jsonschema:"the word to validate"`
}

// SolveOutput is the output schema for both solve tools.
type SolveOutput struct {
	RunID       string           `json:"run_id"`
	Solutions   []SolutionOutput `json:"solutions"`
	Count       int              `json:"count"`
	Stats       StatsOutput      `json:"stats"`
	TooFewWords bool             `json:"too_few_words,omitempty"`
	Words       []WordOutput     `json:"words,omitempty"`
}

// SolutionOutput is one set of five words.
type SolutionOutput struct {
	Words   []WordOutput `json:"words"`
	Missing string       `json:"missing"`
}

// WordOutput is one dictionary entry and every spelling of its letters.
type WordOutput struct {
	Forms   []string `json:"forms"`
	Letters string   `json:"letters"`
}

// StatsOutput summarises the word list reduction.
type StatsOutput struct {
	Total    int `json:"total"`
	Ignored  int `json:"ignored"`
	Distinct int `json:"distinct"`
	Merged   int `json:"merged"`
}

// CheckWordOutput is the output schema for the check_word tool.
type CheckWordOutput struct {
	Valid   bool   `json:"valid"`
	Letters string `json:"letters,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "solve_words",
		Description: "Find every set of five words from the given list that uses 25 distinct letters",
	}, s.handleSolveWords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "solve_file",
		Description: "Find every set of five words in a word list file that uses 25 distinct letters",
	}, s.handleSolveFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_word",
		Description: "Check whether a word qualifies: exactly five distinct letters a-z",
	}, s.handleCheckWord)
}

// handleSolveWords handles the solve_words tool invocation.
func (s *Server) handleSolveWords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SolveWordsInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	if len(input.Words) == 0 {
		return nil, SolveOutput{}, ErrNoWords
	}

	report, err := s.ports.Solver.SolveWords(ctx, input.Words, domain.SearchOptions{Workers: input.Workers})
	if err != nil {
		return nil, SolveOutput{}, err
	}
	s.record(report)
	return nil, toSolveOutput(report), nil
}

// handleSolveFile handles the solve_file tool invocation. Results are
// returned only; nothing is written on the server.
func (s *Server) handleSolveFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SolveFileInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	path := input.Path
	if path == "" {
		path = s.defaultInput()
	}

	report, err := s.ports.Solver.Solve(ctx, domain.SolveOptions{
		Input:  path,
		Search: domain.SearchOptions{Workers: input.Workers},
	})
	if err != nil {
		return nil, SolveOutput{}, err
	}
	s.record(report)
	return nil, toSolveOutput(report), nil
}

// handleCheckWord handles the check_word tool invocation.
func (s *Server) handleCheckWord(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CheckWordInput,
) (*mcp.CallToolResult, CheckWordOutput, error) {
	letters, err := domain.ParseLetters(input.Word)
	if err != nil {
		var werr *domain.WordError
		reason := err.Error()
		if errors.As(err, &werr) {
			reason = werr.Err.Error()
		}
		return nil, CheckWordOutput{Reason: reason}, nil
	}
	return nil, CheckWordOutput{Valid: true, Letters: letters.String()}, nil
}

func (s *Server) defaultInput() string {
	if s.ports.Settings == nil {
		return domain.DefaultInputPath
	}
	settings, err := s.ports.Settings.Get()
	if err != nil || settings.Paths.Input == "" {
		return domain.DefaultInputPath
	}
	return settings.Paths.Input
}

func toSolveOutput(r *domain.Report) SolveOutput {
	out := SolveOutput{
		RunID:     r.RunID,
		Solutions: make([]SolutionOutput, len(r.Solutions())),
		Count:     len(r.Solutions()),
		Stats: StatsOutput{
			Total:    r.Stats.Total,
			Ignored:  r.Stats.Ignored,
			Distinct: r.Stats.Distinct,
			Merged:   r.Stats.Merged,
		},
		TooFewWords: r.Outcome.TooFewWords,
	}

	for i, sol := range r.Solutions() {
		words := make([]WordOutput, 0, len(sol))
		for _, w := range sol {
			words = append(words, toWordOutput(w))
		}
		out.Solutions[i] = SolutionOutput{Words: words, Missing: sol.Missing().String()}
	}

	for _, w := range r.Outcome.Words {
		out.Words = append(out.Words, toWordOutput(w))
	}
	return out
}

func toWordOutput(w *domain.WordEntry) WordOutput {
	return WordOutput{Forms: w.Forms, Letters: w.Letters.String()}
}

// summary renders a report as plain text for the results resource.
func summary(r *domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d solutions from %d distinct words\n", r.RunID, len(r.Solutions()), r.Stats.Distinct)
	for _, sol := range r.Solutions() {
		words := make([]string, 0, len(sol))
		for _, w := range sol {
			words = append(words, w.String())
		}
		fmt.Fprintf(&b, "%s (missing %s)\n", strings.Join(words, " | "), sol.Missing())
	}
	return b.String()
}
