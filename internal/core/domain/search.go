package domain

import "time"

// ProgressFunc observes the search. done counts finished outer iterations
// out of total.
type ProgressFunc func(done, total int)

// SearchOptions configures a single search.
type SearchOptions struct {
	// Workers shards the outer loop; see SearchSettings.Workers.
	Workers int

	// OnProgress is optional.
	OnProgress ProgressFunc

	// OnDictionary, if set, is called once the dictionary is built and
	// before the search starts.
	OnDictionary func(stats DictionaryStats)
}

// SolveOptions configures one solve run.
type SolveOptions struct {
	// Input is the word list location handed to the word source.
	Input string

	// Output is the location handed to the result sink. Empty skips writing.
	Output string

	Search SearchOptions
}

// Report describes a finished solve run.
type Report struct {
	RunID  string
	Input  string
	Output string

	Stats   DictionaryStats
	Outcome SearchOutcome

	BuildDuration  time.Duration
	SearchDuration time.Duration
}

// Solutions is a shorthand for r.Outcome.Solutions.
func (r *Report) Solutions() []Solution {
	return r.Outcome.Solutions
}
