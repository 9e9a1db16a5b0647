package memory

import (
	"context"
	"sync"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
)

// Ensure WordSource implements the interface.
var _ driven.WordSource = (*WordSource)(nil)

// WordSource is an in-memory implementation of driven.WordSource.
// Word lists are keyed by location.
type WordSource struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewWordSource creates an empty in-memory word source.
func NewWordSource() *WordSource {
	return &WordSource{
		lists: make(map[string][]string),
	}
}

// Put stores words under location, replacing any earlier list.
func (s *WordSource) Put(location string, words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[location] = append([]string(nil), words...)
}

// ReadWords returns a copy of the list stored at location.
func (s *WordSource) ReadWords(_ context.Context, location string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.lists[location]
	if !ok {
		return nil, domain.ErrSourceUnavailable
	}
	return append([]string(nil), words...), nil
}
