package driving

import (
	"context"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

// SolverService finds five word sets with no shared letters.
type SolverService interface {
	// Solve reads the word list at opts.Input, searches it and writes the
	// solutions to opts.Output.
	Solve(ctx context.Context, opts domain.SolveOptions) (*domain.Report, error)

	// SolveWords searches the given words directly. Nothing is read or written.
	SolveWords(ctx context.Context, words []string, opts domain.SearchOptions) (*domain.Report, error)
}
