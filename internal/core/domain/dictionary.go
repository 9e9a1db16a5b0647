package domain

// Dictionary is an ordered collection of word entries with pairwise distinct
// signatures. It is read-only once built.
type Dictionary struct {
	entries []*WordEntry
}

// NewDictionary wraps entries in their given order. Callers guarantee that
// no two entries share a signature.
func NewDictionary(entries []*WordEntry) *Dictionary {
	return &Dictionary{entries: entries}
}

// Len returns the number of distinct signatures.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// At returns the entry at position i.
func (d *Dictionary) At(i int) *WordEntry {
	return d.entries[i]
}

// Entries returns the entries in dictionary order.
func (d *Dictionary) Entries() []*WordEntry {
	return d.entries
}

// Signatures returns the set of signatures in the dictionary.
func (d *Dictionary) Signatures() map[LetterSet]struct{} {
	out := make(map[LetterSet]struct{}, len(d.entries))
	for _, e := range d.entries {
		out[e.Letters] = struct{}{}
	}
	return out
}

// DictionaryStats summarises how the raw word list was reduced.
type DictionaryStats struct {
	// Total is the number of lines read.
	Total int

	// Ignored is the number of lines rejected by validation.
	Ignored int

	// Distinct is the number of entries in the dictionary.
	Distinct int

	// Merged is the number of valid lines folded into an existing entry.
	Merged int

	// Rejected counts ignored lines by validation error.
	Rejected map[error]int
}

// Valid returns the number of lines that passed validation.
func (s DictionaryStats) Valid() int {
	return s.Total - s.Ignored
}
