// Package domain defines the core types of the five word search.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LetterSet: a 26-bit set of letters with union and disjointness tests
//   - WordEntry: one letter signature and every spelling that maps to it
//   - Dictionary: signature-unique entries, indexed by position
//   - Solution: five entries whose letters never overlap
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
