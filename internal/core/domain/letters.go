package domain

import (
	"math/bits"
	"strings"
)

// AlphabetSize is the number of letters a LetterSet can hold.
const AlphabetSize = 26

// LetterSet records which letters of the English alphabet are present.
//
// Bit layout (most significant meaningful bit first):
//
//	0000 00zy xwvu tsrq ponm lkji hgfe dcba
//
// The six high bits are always zero.
type LetterSet uint32

// EmptyLetterSet contains no letters.
const EmptyLetterSet LetterSet = 0

// fullLetterSet has every meaningful bit set.
const fullLetterSet LetterSet = 1<<AlphabetSize - 1

// LetterIndex maps r to its alphabet position, ignoring case.
// It reports false for anything outside A-Z and a-z.
func LetterIndex(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	default:
		return 0, false
	}
}

// SingletonOf returns the set holding only r.
func SingletonOf(r rune) (LetterSet, error) {
	idx, ok := LetterIndex(r)
	if !ok {
		return EmptyLetterSet, ErrUnrecognizedCharacter
	}
	return LetterSet(1) << idx, nil
}

// Union returns the letters present in either set.
func (s LetterSet) Union(other LetterSet) LetterSet {
	return s | other
}

// Disjoint reports whether the two sets share no letter.
func (s LetterSet) Disjoint(other LetterSet) bool {
	return s&other == 0
}

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Has reports whether r (in either case) is in the set.
func (s LetterSet) Has(r rune) bool {
	idx, ok := LetterIndex(r)
	if !ok {
		return false
	}
	return s&(1<<idx) != 0
}

// Complement returns the alphabet letters not in s.
func (s LetterSet) Complement() LetterSet {
	return ^s & fullLetterSet
}

// String lists the letters in alphabetical order, lower case.
func (s LetterSet) String() string {
	var b strings.Builder
	b.Grow(s.Count())
	for i := 0; i < AlphabetSize; i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
