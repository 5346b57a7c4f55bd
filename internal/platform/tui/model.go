package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/display"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Options configure a runner model. Nil collaborators are replaced with
// no-op implementations.
type Options struct {
	Config    config.RunnerConfig
	Runtime   core.RuntimeConfig
	Scores    runner.KeyValue
	Recorder  runner.RunRecorder
	Sounds    runner.Sounds
	Lifecycle runner.Lifecycle
	Logger    *log.Logger
}

// Model is the Bubble Tea model hosting one runner Director.
type Model struct {
	director *runner.Director
	canvas   *display.Canvas
	screen   *core.Screen
	config   config.RunnerConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	taps     core.InputFrame
	held     *heldDirection
	quitting bool
}

// NewModel creates a new Bubble Tea model and enters the menu scene.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas := display.NewCanvas()
	director := runner.NewDirector(opts.Config, runner.Deps{
		Display:   canvas,
		Scores:    runner.NewHighScores(opts.Scores, logger),
		Lifecycle: opts.Lifecycle,
		Sounds:    opts.Sounds,
		Recorder:  opts.Recorder,
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
		Logger:    logger,
	}, cfg.TickRate)

	h := help.New()
	h.ShowAll = false

	held := newHeldDirection(cfg.TickRate / 3)

	m := Model{
		director: director,
		canvas:   canvas,
		config:   opts.Config,
		runtime:  cfg,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		taps:     core.NewInputFrame(),
		held:     &held,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight(cfg.ScreenH))
	return m
}

// playHeight leaves the last row for the help footer.
func (m Model) playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

func (m Model) viewport() display.Viewport {
	return display.NewViewport(m.config.Viewport.Width, m.config.Viewport.Height, m.screen.Width(), m.screen.Height())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return frameTick(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionDown:
		m.held.press(a)
	case core.ActionNone:
	default:
		m.taps.Set(a)
	}

	return m, nil
}

// handleMouse maps a left click to the tapped widget's action, or to a
// generic tap when nothing tappable is under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if a, ok := m.canvas.HitTest(msg.X, msg.Y); ok {
		m.taps.Set(a)
	} else {
		m.taps.Set(core.ActionTap)
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is scaled,
// so the run carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	for a := range m.taps.Actions {
		frame.Set(a)
	}
	m.held.apply(&frame)

	// A confirm or tap ends any held movement so the next run starts still.
	if frame.Has(core.ActionConfirm) || frame.Has(core.ActionTap) {
		m.held.release()
	}

	m.director.Step(frame)
	m.taps.Clear()

	return m, frameTick(m.runtime.TickRate)
}

// Director returns the hosted director.
func (m Model) Director() *runner.Director {
	return m.director
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	display.Compose(m.screen, m.viewport(), m.director, m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	display.Compose(m.screen, m.viewport(), m.director, m.canvas)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
