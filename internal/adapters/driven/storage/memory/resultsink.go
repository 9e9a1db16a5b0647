package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
)

// Ensure ResultSink implements the interface.
var _ driven.ResultSink = (*ResultSink)(nil)

// ErrSinkClosed is returned by a ResultSink after Close.
var ErrSinkClosed = errors.New("memory sink closed")

// ResultSink is an in-memory implementation of driven.ResultSink.
type ResultSink struct {
	mu      sync.RWMutex
	results map[string][]domain.Solution
	closed  bool
}

// NewResultSink creates an empty in-memory result sink.
func NewResultSink() *ResultSink {
	return &ResultSink{
		results: make(map[string][]domain.Solution),
	}
}

// WriteSolutions stores solutions under location.
func (s *ResultSink) WriteSolutions(_ context.Context, location string, solutions []domain.Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	s.results[location] = append([]domain.Solution(nil), solutions...)
	return nil
}

// Solutions returns what was last written to location.
func (s *ResultSink) Solutions(location string) ([]domain.Solution, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sols, ok := s.results[location]
	return sols, ok
}

// Close makes every later write fail.
func (s *ResultSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
