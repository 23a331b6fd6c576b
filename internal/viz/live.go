package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	logLines = 14
	minDelay = 50 * time.Millisecond
	maxDelay = 5 * time.Second
)

// TickMsg advances the run it was scheduled for. Ticks of a stopped or
// replaced run are dropped.
type TickMsg struct {
	RunID uuid.UUID
	Time  time.Time
}

// Model plays one sorting run, one step per tick.
type Model struct {
	registry   *driver.Registry
	alg        trace.Algorithm
	input      []int
	run        *driver.Run
	inversions *metrics.Inversions
	current    trace.Step
	delay      time.Duration
	paused     bool
	done       bool
	err        error
	logSizes   []float64
	showHelp   bool
	quitting   bool
}

// NewModel starts alg on a copy of input. Unknown algorithms are rejected
// before anything is drawn.
func NewModel(registry *driver.Registry, alg trace.Algorithm, input []int, delay time.Duration) (Model, error) {
	m := Model{
		registry: registry,
		alg:      alg,
		input:    append([]int(nil), input...),
		delay:    clampDelay(delay),
	}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	id := m.run.ID
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg{RunID: id, Time: t} })
}

// Update handles input events and advances the run on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.run.Stop()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n", "right":
			if m.paused {
				m.step()
			}
		case "r":
			if err := m.restart(); err != nil {
				m.err, m.done = err, true
				return m, nil
			}
			return m, m.tick()
		case "+", "=":
			m.delay = clampDelay(m.delay / 2)
		case "-", "_":
			m.delay = clampDelay(m.delay * 2)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if msg.RunID != m.run.ID {
			return m, nil
		}
		if !m.paused && !m.done {
			m.step()
		}
		if m.done {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// restart begins a fresh run over the same input. Steps of the previous
// run are discarded, not rewound.
func (m *Model) restart() error {
	if m.run != nil {
		m.run.Stop()
	}
	run, err := m.registry.StartAlgorithm(m.alg, m.input)
	if err != nil {
		return err
	}
	m.inversions = metrics.NewInversions()
	run.AddMetric(m.inversions)
	m.run = run
	m.current = trace.Step{Array: run.Input()}
	m.done, m.err = false, nil
	m.logSizes = m.logSizes[:0]
	return nil
}

// step pulls exactly one step from the run.
func (m *Model) step() {
	defer func() {
		if rec := recover(); rec != nil {
			var defect *trace.DefectError
			if err, ok := rec.(error); ok && errors.As(err, &defect) {
				m.err = defect
			} else {
				m.err = fmt.Errorf("%v sort aborted: %v", m.alg, rec)
			}
			m.done = true
		}
	}()

	s, ok := m.run.Next()
	if !ok {
		m.done = true
		return
	}
	m.current = s
	m.logSizes = append(m.logSizes, float64(len(s.Log)))
}

func (m Model) Done() bool { return m.done }

func (m Model) Err() error { return m.err }

func (m Model) Current() trace.Step { return m.current }

func (m Model) Delay() time.Duration { return m.delay }

// progress is the share of the input's inversions already removed.
func (m Model) progress() float64 {
	if m.done && m.err == nil {
		return 1
	}
	initial := m.inversions.Initial()
	if initial == 0 {
		return 1
	}
	return 1 - m.inversions.Value()/float64(initial)
}

// View renders the bars next to the log panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := "RUNNING"
	switch {
	case m.err != nil:
		status = "ABORTED"
	case m.done:
		status = "COMPLETE"
	case m.paused:
		status = "PAUSED"
	}

	var left strings.Builder
	left.WriteString(headerStyle().Render(strings.ToUpper(m.alg.String()+" sort")) + "\n")
	left.WriteString(RenderBars(m.current.Array, m.current.Highlighted, barHeight) + "\n\n")
	left.WriteString(ProgressBar(m.progress(), 30) + "\n")
	switch {
	case m.err != nil:
		left.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(m.err.Error()) + "\n")
	case m.done:
		left.WriteString(statusStyle(true, false).Render("✅ Sorting complete!") + "\n")
		left.WriteString(valueStyle().Render(fmt.Sprintf("Final sorted array: %v", m.run.Array())) + "\n")
	}

	var s strings.Builder
	s.WriteString(statusStyle(m.done, m.paused).Render(status) + "\n\n")
	s.WriteString(labelStyle().Render("Step") + valueStyle().Render(fmt.Sprint(m.run.Steps())) + "\n")
	s.WriteString(labelStyle().Render("Delay") + valueStyle().Render(m.delay.String()) + "\n")
	s.WriteString(labelStyle().Render("Theme") + valueStyle().Render(CurrentTheme.Name) + "\n\n")

	if len(m.logSizes) > 1 {
		chart := asciigraph.Plot(m.logSizes, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("log lines"))
		s.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(chart) + "\n\n")
	}

	s.WriteString("ALGORITHM STEPS LOG\n")
	s.WriteString(Separator(40) + "\n")
	lines := m.current.Log
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	if len(lines) == 0 {
		s.WriteString(labelStyle().Render("(nothing yet)") + "\n")
	}
	for _, line := range lines {
		s.WriteString(valueStyle().Render(line) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause N:Step R:Restart\n+/-:Speed T:Theme Q:Quit ?:Help"))

	view := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Padding(1, 2).Render(left.String()), panelStyle().Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N / →    - Single step while paused ║
║  R        - Restart on same input    ║
║  + / -    - Faster / slower          ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n" + view
	}
	return view
}

func clampDelay(d time.Duration) time.Duration {
	return max(minDelay, min(maxDelay, d))
}
