package domain

import "strings"

// WordLength is the number of distinct letters a usable word must have.
const WordLength = 5

// WordEntry groups every word list spelling that shares one letter signature.
// Anagrams such as "notes" and "stone" collapse into a single entry, so the
// search only ever reasons about distinct signatures.
type WordEntry struct {
	// Letters is the signature; exactly WordLength bits are set.
	Letters LetterSet

	// Forms holds the original spellings in the order they were read.
	Forms []string
}

// String joins all spellings of the entry.
func (w *WordEntry) String() string {
	return strings.Join(w.Forms, ", ")
}

// ParseLetters validates raw as a word of five distinct letters and returns
// its signature. Scanning stops at the first problem, including the moment a
// sixth letter would be added.
func ParseLetters(raw string) (LetterSet, error) {
	set := EmptyLetterSet
	n := 0
	for _, r := range raw {
		letter, err := SingletonOf(r)
		if err != nil {
			return EmptyLetterSet, &WordError{Word: raw, Err: err}
		}
		if !set.Disjoint(letter) {
			return EmptyLetterSet, &WordError{Word: raw, Err: ErrDuplicateLetter}
		}
		if n == WordLength {
			return EmptyLetterSet, &WordError{Word: raw, Err: ErrWrongLength}
		}
		set = set.Union(letter)
		n++
	}
	if n != WordLength {
		return EmptyLetterSet, &WordError{Word: raw, Err: ErrWrongLength}
	}
	return set, nil
}
