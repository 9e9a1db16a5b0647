// Package mcp provides an MCP (Model Context Protocol) server adapter for fivewords.
// It lets AI assistants run the disjoint-letter word search as a tool.
package mcp

import "errors"

// ErrMissingSolverService is returned when the solver service is not provided.
var ErrMissingSolverService = errors.New("mcp: solver service is required")

// ErrNoWords is returned when solve_words is called with an empty list.
var ErrNoWords = errors.New("mcp: words is required")
