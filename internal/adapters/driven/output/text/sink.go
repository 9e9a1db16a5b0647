// Package text writes solutions as a plain, line-oriented dump.
//
// Each solution takes five lines, one per word. A word whose letters are
// spelled several ways in the word list shows every spelling, comma-joined.
// Solutions are separated by a blank line.
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ResultSink = (*Sink)(nil)

// Sink writes solutions to a file path.
type Sink struct{}

// NewSink creates a text result sink.
func NewSink() *Sink {
	return &Sink{}
}

// WriteSolutions replaces the file at location with the rendered solutions.
// The file is written next to its destination and renamed into place.
func (s *Sink) WriteSolutions(ctx context.Context, location string, solutions []domain.Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(location), ".solutions-*")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := Render(tmp, solutions); err != nil {
		tmp.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Rename(tmp.Name(), location); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}

// Render writes solutions to w in the dump format.
func Render(w io.Writer, solutions []domain.Solution) error {
	bw := bufio.NewWriter(w)
	for i, sol := range solutions {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		for _, word := range sol {
			if _, err := fmt.Fprintln(bw, word.String()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
