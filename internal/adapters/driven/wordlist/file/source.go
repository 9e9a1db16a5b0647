// Package file reads word lists from the local filesystem and watches them
// for changes.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.WordSource = (*Source)(nil)

// MaxLineSize bounds a single word list line.
const MaxLineSize = 1 << 20

// ctxCheckInterval is how many lines are read between context checks.
const ctxCheckInterval = 4096

// Source reads a line-oriented word list from a file path.
type Source struct{}

// NewSource creates a file word source.
func NewSource() *Source {
	return &Source{}
}

// ReadWords returns every line of the file at location. Line endings
// (LF or CRLF) are stripped; nothing else is changed.
func (s *Source) ReadWords(ctx context.Context, location string) ([]string, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		if len(lines)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	logger.Debug("Read %d lines from %s", len(lines), location)
	return lines, nil
}
