package services

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

// Search enumerates every set of five dictionary entries with pairwise
// disjoint letters. Each set is reported once, members ordered by
// descending dictionary position.
//
// The outer loop runs over the first member. Every outer index is an
// independent sub-search over read-only data, so with opts.Workers != 1 the
// outer indexes are spread over goroutines. Results are gathered per outer
// index, which keeps the output order identical to the sequential run.
//
// The only error is ctx's, checked once per outer index.
func Search(ctx context.Context, dict *domain.Dictionary, opts domain.SearchOptions) (*domain.SearchOutcome, error) {
	logger.Section("Search")
	defer logger.Timed("search")()

	n := dict.Len()
	outcome := &domain.SearchOutcome{Candidates: n}

	if n < domain.SolutionSize {
		logger.Warn("Only %d distinct words, need at least %d", n, domain.SolutionSize)
		outcome.TooFewWords = true
		outcome.Words = dict.Entries()
		return outcome, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	first := domain.SolutionSize - 1
	total := n - first
	progress := newProgressTracker(total, opts.OnProgress)
	logger.Debug("Searching %d entries, %d outer iterations, %d worker(s)", n, total, workers)

	var (
		solutions []domain.Solution
		err       error
	)
	if workers == 1 {
		solutions, err = searchSequential(ctx, dict.Entries(), first, progress)
	} else {
		solutions, err = searchSharded(ctx, dict.Entries(), first, workers, progress)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Found %d solution(s)", len(solutions))
	outcome.Solutions = solutions
	return outcome, nil
}

func searchSequential(
	ctx context.Context, entries []*domain.WordEntry, first int, progress *progressTracker,
) ([]domain.Solution, error) {
	var out []domain.Solution
	for top := first; top < len(entries); top++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = searchFrom(entries, top, out)
		progress.step()
	}
	return out, nil
}

func searchSharded(
	ctx context.Context, entries []*domain.WordEntry, first, workers int, progress *progressTracker,
) ([]domain.Solution, error) {
	shards := make([][]domain.Solution, len(entries)-first)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for top := first; top < len(entries); top++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shards[top-first] = searchFrom(entries, top, nil)
			progress.step()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Solution
	for _, shard := range shards {
		out = append(out, shard...)
	}
	return out, nil
}

// searchFrom appends every solution whose first member is entries[top].
func searchFrom(entries []*domain.WordEntry, top int, out []domain.Solution) []domain.Solution {
	var chosen domain.Solution
	chosen[0] = entries[top]
	return extend(entries, chosen, 1, entries[top].Letters, top, out)
}

// extend fills position depth of chosen with entries below bound that do not
// touch union. chosen and union are values, so every level works on its own
// copy. A clashing candidate is skipped without descending further.
func extend(
	entries []*domain.WordEntry, chosen domain.Solution, depth int,
	union domain.LetterSet, bound int, out []domain.Solution,
) []domain.Solution {
	for i := 0; i < bound; i++ {
		w := entries[i]
		if !union.Disjoint(w.Letters) {
			continue
		}
		chosen[depth] = w
		if depth == domain.SolutionSize-1 {
			out = append(out, chosen)
			continue
		}
		out = extend(entries, chosen, depth+1, union.Union(w.Letters), i, out)
	}
	return out
}

// progressTracker forwards progress whenever the whole percentage changes.
type progressTracker struct {
	mu      sync.Mutex
	fn      domain.ProgressFunc
	total   int
	done    int
	percent int
}

func newProgressTracker(total int, fn domain.ProgressFunc) *progressTracker {
	p := &progressTracker{fn: fn, total: total}
	if fn != nil {
		fn(0, total)
	}
	return p
}

func (p *progressTracker) step() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	percent := 100 * p.done / p.total
	if percent != p.percent || p.done == p.total {
		p.percent = percent
		p.fn(p.done, p.total)
	}
}
