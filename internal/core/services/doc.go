// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// BuildDictionary and Search are the algorithmic core; Solver wires them to
// a word source and a result sink.
package services
