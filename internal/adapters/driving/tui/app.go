package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driving/tui/components/status"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driving/tui/keymap"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driving/tui/messages"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/adapters/driving/tui/styles"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/ports/driving"
)

// eventBuffer holds every message one run can emit: the dictionary summary,
// at most 101 progress steps plus the opening one, and the completion.
const eventBuffer = 128

// headerHeight is the number of lines above the results pane.
const headerHeight = 6

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context
	opts  domain.SolveOptions

	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	progress progress.Model
	results  viewport.Model

	// events carries messages from the running solve. Replaced on rerun.
	events chan tea.Msg

	stats   *domain.DictionaryStats
	report  *domain.Report
	percent float64
	running bool
	err     error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a TUI that solves with opts once started.
func NewApp(ports *Ports, opts domain.SolveOptions) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		opts:   opts,
		styles: s,
		keymap: km,
		status: status.NewBar(s, km),
		progress: progress.New(
			progress.WithGradient(string(s.Theme().Primary), string(s.Theme().Secondary)),
		),
		results: viewport.New(80, 20),
	}, nil
}

// WithContext sets the context for the app. Cancelling it stops a running
// search.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fivewords"),
		a.startSolve(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Rerun):
			return a, a.startSolve()
		}
		a.results, cmd = a.results.Update(msg)
		return a, cmd

	case messages.SolveRequested:
		return a, a.startSolve()

	case messages.DictionaryBuilt:
		stats := msg.Stats
		a.stats = &stats
		a.status.SetState(status.StateSearching)
		return a, waitForEvent(a.events)

	case messages.SearchProgressed:
		a.percent = msg.Percent()
		return a, waitForEvent(a.events)

	case messages.SolveCompleted:
		a.running = false
		a.report = msg.Report
		a.err = msg.Err
		if msg.Report != nil {
			a.stats = &msg.Report.Stats
			a.results.SetContent(a.renderReport(msg.Report))
			a.results.GotoTop()
		}
		if msg.Err != nil {
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.percent = 1
		a.status.SetState(status.StateResults)
		a.status.SetResultCount(len(msg.Report.Solutions()))
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	a.results, cmd = a.results.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("fivewords"))
	b.WriteString(a.styles.Muted.Render("  " + a.opts.Input))
	b.WriteString("\n\n")

	if a.stats != nil {
		b.WriteString(a.styles.Normal.Render(summaryLine(*a.stats)))
	}
	b.WriteString("\n")

	if a.running || a.report == nil {
		b.WriteString(a.progress.ViewAs(a.percent))
	} else {
		b.WriteString(a.styles.Success.Render(timingLine(a.report)))
	}
	b.WriteString("\n\n")

	if a.report != nil {
		b.WriteString(a.results.View())
		b.WriteString("\n")
	} else if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(a.status.View())
	return b.String()
}

// SetDimensions resizes every component to the terminal.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.status.SetWidth(width)
	a.progress.Width = min(max(width-4, 10), 80)
	a.results.Width = width
	a.results.Height = max(height-headerHeight-1, 1)
}

// startSolve launches a run unless one is in flight.
func (a *App) startSolve() tea.Cmd {
	if a.running {
		return nil
	}
	a.running = true
	a.stats = nil
	a.report = nil
	a.err = nil
	a.percent = 0
	a.status.Clear()

	a.events = make(chan tea.Msg, eventBuffer)
	return tea.Batch(
		runSolve(a.ctx, a.ports.Solver, a.opts, a.events),
		waitForEvent(a.events),
	)
}

// runSolve runs the search and streams its progress into events. The
// channel is closed once the completion message is queued.
func runSolve(ctx context.Context, solver driving.SolverService, opts domain.SolveOptions, events chan<- tea.Msg) tea.Cmd {
	return func() tea.Msg {
		defer close(events)

		send := func(msg tea.Msg) {
			select {
			case events <- msg:
			case <-ctx.Done():
			}
		}

		opts.Search.OnDictionary = func(stats domain.DictionaryStats) {
			send(messages.DictionaryBuilt{Stats: stats})
		}
		opts.Search.OnProgress = func(done, total int) {
			send(messages.SearchProgressed{Done: done, Total: total})
		}

		report, err := solver.Solve(ctx, opts)
		send(messages.SolveCompleted{Report: report, Err: err})
		return nil
	}
}

// waitForEvent delivers the next message from a running solve.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (a *App) renderReport(r *domain.Report) string {
	var b strings.Builder

	if r.Outcome.TooFewWords {
		fmt.Fprintf(&b, "%s\n\n", a.styles.Warning.Render(fmt.Sprintf(
			"Only %d distinct words, need %d:", len(r.Outcome.Words), domain.SolutionSize)))
		for _, w := range r.Outcome.Words {
			fmt.Fprintf(&b, "  %s\n", a.styles.Word.Render(w.String()))
		}
		return b.String()
	}

	if len(r.Solutions()) == 0 {
		return a.styles.Muted.Render("No solutions found.")
	}

	for i, sol := range r.Solutions() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n",
			a.styles.Subtitle.Render(fmt.Sprintf("#%d", i+1)),
			a.styles.Muted.Render("missing ")+a.styles.Missing.Render(sol.Missing().String()))
		for _, w := range sol {
			fmt.Fprintf(&b, "  %s\n", a.styles.Word.Render(w.String()))
		}
	}
	return b.String()
}

func summaryLine(stats domain.DictionaryStats) string {
	return fmt.Sprintf("%s words read, %s ignored, %s distinct (%s merged)",
		humanize.Comma(int64(stats.Total)),
		humanize.Comma(int64(stats.Ignored)),
		humanize.Comma(int64(stats.Distinct)),
		humanize.Comma(int64(stats.Merged)))
}

func timingLine(r *domain.Report) string {
	return fmt.Sprintf("Done: built in %s, searched in %s",
		r.BuildDuration.Round(time.Millisecond), r.SearchDuration.Round(time.Millisecond))
}

// Report returns the last finished report, if any.
func (a *App) Report() *domain.Report {
	return a.report
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Running reports whether a search is in flight.
func (a *App) Running() bool {
	return a.running
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}
