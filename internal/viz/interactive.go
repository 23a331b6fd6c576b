package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/trace"
)

var (
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pick = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
)

const (
	stateMenu = iota
	stateConfig
	stateSort
)

var configFields = []string{"size", "speed", "shape", "seed"}

type app struct {
	state, cursor int
	registry      *driver.Registry
	algorithms    []trace.Algorithm
	cfg           config.Config
	fieldCursor   int
	err           error
	live          Model
}

// NewInteractiveApp builds the menu → settings → live viewer flow.
func NewInteractiveApp(registry *driver.Registry, cfg config.Config) *app {
	cursor := 0
	algs := registry.List()
	for i, a := range algs {
		if a == cfg.Algorithm {
			cursor = i
		}
	}
	return &app{
		state:      stateMenu,
		cursor:     cursor,
		registry:   registry,
		algorithms: algs,
		cfg:        cfg,
	}
}

func (m app) Init() tea.Cmd { return nil }

func (m app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateSort {
			next, cmd := m.live.Update(msg)
			m.live = next.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m app) handleKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSort:
		if msg.String() == "m" {
			m.live.run.Stop()
			m.state = stateMenu
			return m, nil
		}
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	return m, nil
}

func (m app) menuKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Algorithm = m.algorithms[m.cursor]
		m.state, m.fieldCursor = stateConfig, 0
	}
	return m, nil
}

func (m app) configKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(configFields)-1 {
			m.fieldCursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", "s":
		return m.start()
	}
	return m, nil
}

// adjust moves the selected setting one notch in dir.
func (m *app) adjust(dir int) {
	switch configFields[m.fieldCursor] {
	case "size":
		m.cfg.Size = config.ClampSize(m.cfg.Size + dir)
	case "speed":
		m.cfg.Speed = cycle(config.ListSpeeds(), m.cfg.Speed, dir)
	case "shape":
		m.cfg.Shape = cycle(config.ListShapes(), m.cfg.Shape, dir)
	case "seed":
		m.cfg.Seed = max(0, m.cfg.Seed+int64(dir))
	}
}

func (m app) start() (app, tea.Cmd) {
	cfg := m.cfg
	cfg.Values = nil
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	live, err := NewModel(m.registry, cfg.Algorithm, cfg.Input(), cfg.Delay())
	if err != nil {
		m.err = err
		return m, nil
	}
	m.live, m.state, m.err = live, stateSort, nil
	return m, live.Init()
}

func cycle(options []string, current string, dir int) string {
	for i, o := range options {
		if o == current {
			return options[(i+dir+len(options))%len(options)]
		}
	}
	return options[0]
}

func (m app) View() string {
	switch m.state {
	case stateConfig:
		return m.configView()
	case stateSort:
		return m.live.View() + "\n" + dim.Render("M:Menu")
	}

	var b strings.Builder
	b.WriteString(cyan.Render("🎨 SORTING ALGORITHM VISUALIZER") + "\n\n")
	for i, alg := range m.algorithms {
		line := fmt.Sprintf("%-10s %s", strings.ToLower(alg.String()), dim.Render(alg.Description()))
		if i == m.cursor {
			b.WriteString(pick.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + dim.Render("↑↓:Select Enter:Configure Q:Quit"))
	return b.String()
}

func (m app) configView() string {
	values := map[string]string{
		"size":  fmt.Sprint(m.cfg.Size),
		"speed": fmt.Sprintf("%s (%s per step)", m.cfg.Speed, m.cfg.Delay()),
		"shape": m.cfg.Shape,
		"seed":  "random",
	}
	if m.cfg.Seed != 0 {
		values["seed"] = fmt.Sprint(m.cfg.Seed)
	}

	var b strings.Builder
	b.WriteString(cyan.Render(strings.ToUpper(m.cfg.Algorithm.String()+" sort")) + "\n\n")
	for i, f := range configFields {
		line := fmt.Sprintf("%-6s %s", f, values[f])
		if i == m.fieldCursor {
			b.WriteString(pick.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if m.err != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + dim.Render("↑↓:Field ←→:Change Enter:Start Esc:Back"))
	return b.String()
}

// RunInteractive starts the full-screen menu.
func RunInteractive(registry *driver.Registry, cfg config.Config) error {
	p := tea.NewProgram(NewInteractiveApp(registry, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunLive plays a single run without the menu.
func RunLive(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
