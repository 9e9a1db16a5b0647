package driven

import (
	"context"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

// ResultSink receives the solutions of a finished search.
type ResultSink interface {
	// WriteSolutions stores solutions at location, replacing earlier content.
	WriteSolutions(ctx context.Context, location string, solutions []domain.Solution) error
}
