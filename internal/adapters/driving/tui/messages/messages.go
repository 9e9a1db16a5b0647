// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow from the background search into the
// Elm architecture loop.
package messages

import (
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
)

// SolveRequested is a command to start a search.
type SolveRequested struct{}

// DictionaryBuilt is sent once the word list has been read and collapsed.
type DictionaryBuilt struct {
	Stats domain.DictionaryStats
}

// SearchProgressed is sent whenever the completed percentage changes.
type SearchProgressed struct {
	Done  int
	Total int
}

// Percent returns the fraction done in [0, 1].
func (m SearchProgressed) Percent() float64 {
	if m.Total <= 0 {
		return 1
	}
	return float64(m.Done) / float64(m.Total)
}

// SolveCompleted carries the finished report back to the model.
type SolveCompleted struct {
	Report *domain.Report
	Err    error
}

// Quit is a command to exit the application.
type Quit struct{}
