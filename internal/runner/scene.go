package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// SceneID selects the active scene.
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneGame
)

// String returns a human-readable name for the scene.
func (id SceneID) String() string {
	switch id {
	case SceneMenu:
		return "Menu"
	case SceneGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// Scene is one screen of the program. Tick returns the scene that should be
// active afterwards; returning its own ID keeps it.
type Scene interface {
	Enter()
	Tick(in core.InputFrame, dtMs int) SceneID
	Exit()
}

// MenuScene shows the title and the PLAY button.
type MenuScene struct {
	cfg     config.RunnerConfig
	deps    Deps
	widgets []Handle
}

// NewMenuScene creates the menu scene.
func NewMenuScene(cfg config.RunnerConfig, deps Deps) *MenuScene {
	return &MenuScene{cfg: cfg, deps: deps.withDefaults()}
}

// Enter draws the menu and reports loading finished, on every entry.
func (m *MenuScene) Enter() {
	m.deps.Lifecycle.LoadingFinished()

	cx, cy := m.cfg.Viewport.Width/2, m.cfg.Viewport.Height/2
	d := m.deps.Display
	m.widgets = []Handle{
		d.CreateText(cx, cy-100, "Endless Runner", TextStyle{Color: core.ColorWhite, Centered: true}),
		d.CreateText(cx, cy, "▶ PLAY", TextStyle{Color: core.ColorGreen, Centered: true, Tap: core.ActionConfirm}),
	}
}

// Tick waits for a tap on PLAY. Taps elsewhere are ignored.
func (m *MenuScene) Tick(in core.InputFrame, _ int) SceneID {
	if in.Has(core.ActionConfirm) {
		return SceneGame
	}
	return SceneMenu
}

// Exit removes the menu widgets.
func (m *MenuScene) Exit() {
	destroyAll(m.deps.Display, m.widgets)
	m.widgets = nil
}

// GameScene hosts a Session.
type GameScene struct {
	session *Session
}

// NewGameScene creates the game scene around session.
func NewGameScene(session *Session) *GameScene {
	return &GameScene{session: session}
}

// Enter starts a new run.
func (g *GameScene) Enter() {
	g.session.Start()
}

// Tick advances the run and returns to the menu once the game-over screen
// has been acknowledged.
func (g *GameScene) Tick(in core.InputFrame, dtMs int) SceneID {
	g.session.Tick(in, dtMs)
	if g.session.State() == StateReady {
		return SceneMenu
	}
	return SceneGame
}

// Exit is a no-op; the session tears its widgets down on acknowledgement.
func (g *GameScene) Exit() {}

// Director owns the scenes and switches between them. It is driven by the
// host's frame loop and is not safe for concurrent use.
type Director struct {
	scenes  map[SceneID]Scene
	current SceneID
	session *Session
	clock   *core.FrameClock
}

// NewDirector wires the menu and game scenes and enters the menu.
func NewDirector(cfg config.RunnerConfig, deps Deps, tickRate int) *Director {
	deps = deps.withDefaults()
	session := NewSession(cfg, deps)

	d := &Director{
		scenes: map[SceneID]Scene{
			SceneMenu: NewMenuScene(cfg, deps),
			SceneGame: NewGameScene(session),
		},
		current: SceneMenu,
		session: session,
		clock:   core.NewFrameClock(tickRate),
	}
	d.scenes[d.current].Enter()
	return d
}

// Step runs one frame of the active scene and performs any scene switch.
func (d *Director) Step(in core.InputFrame) {
	next := d.scenes[d.current].Tick(in, d.clock.Next())
	if next == d.current {
		return
	}
	d.scenes[d.current].Exit()
	d.current = next
	d.scenes[d.current].Enter()
}

// Current returns the active scene.
func (d *Director) Current() SceneID {
	return d.current
}

// Session returns the session hosted by the game scene.
func (d *Director) Session() *Session {
	return d.session
}
