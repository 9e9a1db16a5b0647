package domain

import (
	"errors"
	"fmt"
)

// Word validation errors. A word list line failing any of these is skipped,
// never fatal.
var (
	// ErrUnrecognizedCharacter indicates a character outside A-Z and a-z.
	ErrUnrecognizedCharacter = errors.New("unrecognized character")

	// ErrDuplicateLetter indicates a word that uses a letter more than once.
	ErrDuplicateLetter = errors.New("duplicate letter")

	// ErrWrongLength indicates a word that does not have exactly five letters.
	ErrWrongLength = errors.New("wrong length")
)

// Run errors. These abort a solve run.
var (
	// ErrSourceUnavailable indicates the word list could not be read at all.
	// No search is attempted.
	ErrSourceUnavailable = errors.New("word list unavailable")

	// ErrSinkUnavailable indicates the solutions could not be written.
	// The search has already completed when this is returned.
	ErrSinkUnavailable = errors.New("result output unavailable")

	// ErrInvalidSetting indicates an unknown settings key or a bad value.
	ErrInvalidSetting = errors.New("invalid setting")
)

// WordError records why a single word was rejected.
type WordError struct {
	Word string
	Err  error
}

func (e *WordError) Error() string {
	return fmt.Sprintf("word %q: %v", e.Word, e.Err)
}

func (e *WordError) Unwrap() error {
	return e.Err
}

// ValidationErrors lists the per-word rejection kinds in reporting order.
func ValidationErrors() []error {
	return []error{ErrUnrecognizedCharacter, ErrDuplicateLetter, ErrWrongLength}
}
