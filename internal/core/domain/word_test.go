package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetters_Valid(t *testing.T) {
	for _, word := range []string{"FJORD", "gucks", "Nymph", "vIbEx", "WALTZ", "stone"} {
		t.Run(word, func(t *testing.T) {
			set, err := ParseLetters(word)

			require.NoError(t, err)
			assert.Equal(t, WordLength, set.Count())
			for _, r := range word {
				assert.True(t, set.Has(r))
			}
		})
	}
}

func TestParseLetters_CaseInsensitive(t *testing.T) {
	upper, err := ParseLetters("STONE")
	require.NoError(t, err)
	lower, err := ParseLetters("stone")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestParseLetters_Rejections(t *testing.T) {
	tests := []struct {
		name string
		word string
		want error
	}{
		{"digit", "ab3de", ErrUnrecognizedCharacter},
		{"apostrophe", "can't", ErrUnrecognizedCharacter},
		{"trailing space", "fjord ", ErrUnrecognizedCharacter},
		{"accented letter", "crème", ErrUnrecognizedCharacter},
		{"repeated letter", "HELLO", ErrDuplicateLetter},
		{"repeated letter across case", "Abcda", ErrDuplicateLetter},
		{"too short", "CAT", ErrWrongLength},
		{"too long", "ABCDEFG", ErrWrongLength},
		{"empty", "", ErrWrongLength},
		{"six letters", "planet", ErrWrongLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseLetters(tt.word)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, EmptyLetterSet, set)

			var wordErr *WordError
			require.True(t, errors.As(err, &wordErr))
			assert.Equal(t, tt.word, wordErr.Word)
		})
	}
}

func TestParseLetters_OverLengthStopsAtSixthLetter(t *testing.T) {
	// The bad character sits after the sixth letter, so it is never reached.
	word := "abcdef" + strings.Repeat("!", 1000)

	_, err := ParseLetters(word)

	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestParseLetters_FirstProblemWins(t *testing.T) {
	_, err := ParseLetters("aa1")
	assert.ErrorIs(t, err, ErrDuplicateLetter)

	_, err = ParseLetters("a1a")
	assert.ErrorIs(t, err, ErrUnrecognizedCharacter)
}

func TestWordError_Message(t *testing.T) {
	err := &WordError{Word: "hello", Err: ErrDuplicateLetter}

	assert.Equal(t, `word "hello": duplicate letter`, err.Error())
	assert.Equal(t, ErrDuplicateLetter, errors.Unwrap(err))
}

func TestWordEntry_String(t *testing.T) {
	entry := &WordEntry{
		Letters: mustLetters(t, "stone"),
		Forms:   []string{"STONE", "NOTES", "ONSET"},
	}

	assert.Equal(t, "STONE, NOTES, ONSET", entry.String())
}

func TestValidationErrors(t *testing.T) {
	assert.Equal(t, []error{ErrUnrecognizedCharacter, ErrDuplicateLetter, ErrWrongLength}, ValidationErrors())
}
