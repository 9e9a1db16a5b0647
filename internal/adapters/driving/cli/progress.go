package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/time/rate"
)

const (
	// redrawInterval limits how often the bar is repainted.
	redrawInterval = 100 * time.Millisecond

	maxBarWidth = 60
)

var progressLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

// progressBar draws a single self-overwriting line on a terminal. It is a
// no-op when disabled or when the writer is not a terminal.
type progressBar struct {
	w       io.Writer
	model   progress.Model
	redraw  rate.Sometimes
	enabled bool

	mu      sync.Mutex
	percent float64
	drawn   bool
}

func newProgressBar(w io.Writer, enabled bool) *progressBar {
	width := maxBarWidth
	if enabled {
		f, ok := w.(*os.File)
		enabled = ok && term.IsTerminal(int(f.Fd()))
		if enabled {
			if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
				width = min(maxBarWidth, cols-lipgloss.Width(progressLabel.Render("Searching "))-1)
			}
		}
	}

	return &progressBar{
		w:       w,
		model:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(max(width, 10))),
		redraw:  rate.Sometimes{Interval: redrawInterval},
		enabled: enabled,
	}
}

// Update records progress and repaints at most every redrawInterval. The
// final step is always painted.
func (p *progressBar) Update(done, total int) {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.percent = 1
	if total > 0 {
		p.percent = float64(done) / float64(total)
	}
	if done >= total {
		p.draw()
		return
	}
	p.redraw.Do(p.draw)
}

// Finish ends the line if anything was drawn.
func (p *progressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.drawn {
		fmt.Fprintln(p.w)
		p.drawn = false
	}
}

func (p *progressBar) draw() {
	fmt.Fprintf(p.w, "\r%s%s", progressLabel.Render("Searching "), p.model.ViewAs(p.percent))
	p.drawn = true
}
