// Package tui provides an interactive terminal user interface for fivewords.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Solver runs the word search.
	Solver driving.SolverService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Solver == nil {
		return ErrMissingSolverService
	}
	return nil
}
