package mcp

import (
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Solver runs searches.
	Solver driving.SolverService

	// Settings supplies the default word list path. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Solver == nil {
		return ErrMissingSolverService
	}
	return nil
}
