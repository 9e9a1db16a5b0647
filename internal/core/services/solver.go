package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driving"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

// Ensure Solver implements the interface.
var _ driving.SolverService = (*Solver)(nil)

// Solver runs the whole pipeline: read the word list, build the dictionary,
// search it and hand the solutions to the sink. Each step finishes before the
// next one starts.
type Solver struct {
	source driven.WordSource
	sink   driven.ResultSink
	now    func() time.Time
}

// NewSolver creates a solver. The sink may be nil, in which case Solve
// never writes results.
func NewSolver(source driven.WordSource, sink driven.ResultSink) *Solver {
	return &Solver{
		source: source,
		sink:   sink,
		now:    time.Now,
	}
}

// Solve reads, searches and writes. A word list that cannot be read aborts
// before the search with domain.ErrSourceUnavailable. A failed write returns
// domain.ErrSinkUnavailable together with the complete report.
func (s *Solver) Solve(ctx context.Context, opts domain.SolveOptions) (*domain.Report, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no word source configured", domain.ErrSourceUnavailable)
	}

	lines, err := s.source.ReadWords(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	report, err := s.run(ctx, lines, opts.Search)
	if err != nil {
		return nil, err
	}
	report.Input = opts.Input

	if opts.Output == "" || s.sink == nil {
		return report, nil
	}
	if err := s.sink.WriteSolutions(ctx, opts.Output, report.Solutions()); err != nil {
		return report, fmt.Errorf("%w: %w", domain.ErrSinkUnavailable, err)
	}
	report.Output = opts.Output
	logger.Info("Wrote %d solution(s) to %s", len(report.Solutions()), opts.Output)

	return report, nil
}

// SolveWords searches words without touching the source or the sink.
func (s *Solver) SolveWords(ctx context.Context, words []string, opts domain.SearchOptions) (*domain.Report, error) {
	return s.run(ctx, words, opts)
}

func (s *Solver) run(ctx context.Context, lines []string, opts domain.SearchOptions) (*domain.Report, error) {
	report := &domain.Report{RunID: uuid.NewString()}
	logger.Debug("Run %s: %d lines", report.RunID, len(lines))

	start := s.now()
	dict, stats := BuildDictionary(lines)
	report.Stats = stats
	report.BuildDuration = s.now().Sub(start)
	if opts.OnDictionary != nil {
		opts.OnDictionary(stats)
	}

	start = s.now()
	outcome, err := Search(ctx, dict, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Run %s cancelled", report.RunID)
		}
		return nil, fmt.Errorf("search: %w", err)
	}
	report.Outcome = *outcome
	report.SearchDuration = s.now().Sub(start)

	return report, nil
}
