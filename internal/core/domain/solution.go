package domain

// SolutionSize is the number of words in a solution.
const SolutionSize = 5

// Solution is a set of five entries whose signatures are pairwise disjoint.
type Solution [SolutionSize]*WordEntry

// Letters returns the union of the member signatures.
func (s Solution) Letters() LetterSet {
	set := EmptyLetterSet
	for _, w := range s {
		if w != nil {
			set = set.Union(w.Letters)
		}
	}
	return set
}

// Missing returns the alphabet letters no member uses.
func (s Solution) Missing() LetterSet {
	return s.Letters().Complement()
}

// Valid reports whether all members are present and pairwise disjoint.
func (s Solution) Valid() bool {
	seen := EmptyLetterSet
	for _, w := range s {
		if w == nil || !seen.Disjoint(w.Letters) {
			return false
		}
		seen = seen.Union(w.Letters)
	}
	return seen.Count() == SolutionSize*WordLength
}

// SearchOutcome is what a search over a dictionary produced.
type SearchOutcome struct {
	// Solutions in enumeration order.
	Solutions []Solution

	// Candidates is the dictionary size that was searched.
	Candidates int

	// TooFewWords is set when the dictionary cannot form even one
	// combination. No search ran in that case.
	TooFewWords bool

	// Words lists the surviving entries when TooFewWords is set.
	Words []*WordEntry
}
