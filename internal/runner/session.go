package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the run's position in its lifecycle.
type State int

const (
	StateReady State = iota
	StateRunning
	StateShopOpen
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateShopOpen:
		return "ShopOpen"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunState is the mutable bookkeeping of a single run.
type RunState struct {
	RunID              uuid.UUID
	Score              int
	Gems               int
	Alive              bool
	ShopOpen           bool
	ObstacleIntervalMs int
	Ticks              int // Simulated frames while running
}

// Player is the controlled entity. X is fixed; Y moves with input.
type Player struct {
	X, Y int
	W, H int
}

// Bounds returns the player's collision rectangle.
func (p Player) Bounds() core.Rect {
	return core.RectAround(p.X, p.Y, p.W, p.H)
}

// Session owns one run: player, entity field, spawn scheduler, difficulty
// and the widgets that show them.
type Session struct {
	cfg        config.RunnerConfig
	deps       Deps
	state      State
	run        RunState
	player     Player
	field      *EntityField
	scheduler  *SpawnScheduler
	difficulty *config.DifficultyController
	collisions CollisionResolver
	highScore  int
	muted      bool
	hud        hudWidgets
	shop       []Handle
	gameOver   []Handle
}

type hudWidgets struct {
	score, gems, best, shop, mute Handle
	live                          bool
}

// NewSession creates a session in the Ready state.
func NewSession(cfg config.RunnerConfig, deps Deps) *Session {
	deps = deps.withDefaults()
	field := NewEntityField(cfg)
	return &Session{
		cfg:        cfg,
		deps:       deps,
		state:      StateReady,
		field:      field,
		scheduler:  NewSpawnScheduler(cfg, field, deps.Rand),
		difficulty: config.NewDifficultyController(cfg.Difficulty),
		player:     newPlayer(cfg),
	}
}

func newPlayer(cfg config.RunnerConfig) Player {
	return Player{
		X: cfg.Player.X,
		Y: cfg.Player.StartY,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// RunState returns a copy of the run bookkeeping.
func (s *Session) RunState() RunState {
	return s.run
}

// Player returns the player.
func (s *Session) Player() Player {
	return s.player
}

// Field returns the entity field for rendering.
func (s *Session) Field() *EntityField {
	return s.field
}

// Start begins a new run from Ready. It is a no-op in any other state.
func (s *Session) Start() {
	if s.state != StateReady {
		return
	}

	s.difficulty.Reset()
	s.field.Clear()
	s.scheduler.Reset(s.difficulty.Interval())
	s.player = newPlayer(s.cfg)
	s.highScore = s.deps.Scores.Load()
	s.run = RunState{
		RunID:              uuid.New(),
		Alive:              true,
		ObstacleIntervalMs: s.difficulty.Interval(),
	}
	s.state = StateRunning

	s.createHUD()
	s.deps.Lifecycle.SessionStart(s.run.RunID)
	s.deps.Logger.Info("run started", "run", s.run.RunID, "interval_ms", s.run.ObstacleIntervalMs, "best", s.highScore)
}

// Tick advances the run by one frame of dtMs simulated milliseconds.
// Taps (shop, mute, confirm) are handled first; the simulation itself only
// advances while Running, in the order movement, spawning, scrolling, collisions.
func (s *Session) Tick(in core.InputFrame, dtMs int) {
	if in.Has(core.ActionShop) {
		s.ToggleShop()
	}
	if in.Has(core.ActionMute) {
		s.ToggleMute()
	}
	if s.state == StateGameOver && (in.Has(core.ActionConfirm) || in.Has(core.ActionTap)) {
		s.Acknowledge()
		return
	}
	if s.state != StateRunning {
		return
	}

	s.run.Ticks++

	// Movement
	if dir := in.Vertical(); dir != 0 {
		half := s.player.H / 2
		s.player.Y = core.Clamp(s.player.Y+dir*s.cfg.Player.Speed, half, s.cfg.Viewport.Height-half)
	}

	// Spawn triggers
	report := s.scheduler.Tick(dtMs)
	if report.PickupsRejected > 0 {
		s.deps.Logger.Debug("pickup spawn rejected by overlap rule", "count", report.PickupsRejected)
	}

	// Scroll and expire
	for n := s.field.Advance(s.cfg.Viewport.ScrollSpeed); n > 0; n-- {
		s.addPoint()
	}

	// Collisions
	res := s.collisions.Check(s.player.Bounds(), s.field)
	for range res.Collected {
		s.run.Gems++
		s.deps.Sounds.GemCollected()
	}
	if len(res.Collected) > 0 {
		s.deps.Display.SetText(s.hud.gems, gemsText(s.run.Gems))
	}
	if res.CollidedObstacle {
		s.field.markHit(res.Obstacle.ID)
		s.endRun()
	}
}

// addPoint scores one expired obstacle and applies difficulty progression.
func (s *Session) addPoint() {
	s.run.Score++
	s.deps.Display.SetText(s.hud.score, scoreText(s.run.Score))

	interval, reschedule := s.difficulty.OnScoreIncrement(s.run.Score)
	if !reschedule {
		return
	}
	s.scheduler.Reschedule(interval)
	s.run.ObstacleIntervalMs = interval
	s.deps.Logger.Debug("obstacle interval stepped", "score", s.run.Score, "interval_ms", interval)
}

// endRun transitions Running -> GameOver.
func (s *Session) endRun() {
	s.state = StateGameOver
	s.run.Alive = false

	newBest := s.deps.Scores.RecordIfHigher(s.run.Score)
	if newBest {
		s.highScore = s.run.Score
		s.deps.Display.SetText(s.hud.best, bestText(s.highScore))
	}

	s.deps.Lifecycle.SessionStop(s.run.RunID, s.run.Score)
	s.deps.Sounds.GameOver()

	if s.deps.Recorder != nil {
		summary := RunSummary{
			RunID:    s.run.RunID,
			Score:    s.run.Score,
			Gems:     s.run.Gems,
			Ticks:    s.run.Ticks,
			NewBest:  newBest,
			Finished: time.Now(),
		}
		if err := s.deps.Recorder.RecordRun(summary); err != nil {
			s.deps.Logger.Warn("could not record run", "run", s.run.RunID, "error", err)
		}
	}

	cx, cy := s.cfg.Viewport.Width/2, s.cfg.Viewport.Height/2
	s.gameOver = []Handle{
		s.deps.Display.CreateText(cx, cy-50, "Game Over", TextStyle{Color: core.ColorRed, Centered: true}),
		s.deps.Display.CreateText(cx, cy+10, "Click to Restart", TextStyle{Color: core.ColorWhite, Centered: true, Tap: core.ActionConfirm}),
	}

	s.deps.Logger.Info("run over", "run", s.run.RunID, "score", s.run.Score, "gems", s.run.Gems, "new_best", newBest)
}

// ToggleShop opens or closes the shop overlay. It reports whether the
// state changed; outside Running and ShopOpen it does nothing.
func (s *Session) ToggleShop() bool {
	switch s.state {
	case StateRunning:
		s.openShop()
	case StateShopOpen:
		s.closeShop()
	default:
		return false
	}
	return true
}

func (s *Session) openShop() {
	cx, cy := s.cfg.Viewport.Width/2, s.cfg.Viewport.Height/2
	d := s.deps.Display
	s.shop = []Handle{
		d.CreateShape(core.RectAround(cx, cy, 350, 400), ShapeStyle{Fill: ' ', Color: core.ColorPanel, Border: true}),
		d.CreateText(cx, cy-150, "SHOP", TextStyle{Color: core.ColorWhite, Centered: true}),
		d.CreateText(cx, cy-50, "Skins & Upgrades (Coming soon)", TextStyle{Color: core.ColorGray, Centered: true}),
	}
	s.state = StateShopOpen
	s.run.ShopOpen = true
}

func (s *Session) closeShop() {
	destroyAll(s.deps.Display, s.shop)
	s.shop = nil
	s.state = StateRunning
	s.run.ShopOpen = false
}

// ToggleMute flips the audio mute flag. Mute survives restarts.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
	s.deps.Sounds.SetMuted(s.muted)
	if s.hud.live {
		s.deps.Display.SetText(s.hud.mute, muteText(s.muted))
	}
}

// Acknowledge confirms the game-over screen: every run-scoped widget and
// entity is torn down and the session returns to Ready. It reports whether
// the transition happened.
func (s *Session) Acknowledge() bool {
	if s.state != StateGameOver {
		return false
	}

	d := s.deps.Display
	destroyAll(d, s.gameOver)
	destroyAll(d, s.shop)
	s.destroyHUD()
	s.gameOver, s.shop = nil, nil
	s.field.Clear()
	s.state = StateReady
	return true
}

// Abandon ends a run whose player left before it finished. The run is
// reported stopped but neither scored against the high score nor recorded.
// It reports whether a run was in progress.
func (s *Session) Abandon() bool {
	if s.state != StateRunning && s.state != StateShopOpen {
		return false
	}

	s.state = StateGameOver
	s.run.Alive = false
	s.run.ShopOpen = false
	s.deps.Lifecycle.SessionStop(s.run.RunID, s.run.Score)
	s.deps.Logger.Info("run abandoned", "run", s.run.RunID, "score", s.run.Score)
	return s.Acknowledge()
}

func (s *Session) createHUD() {
	d := s.deps.Display
	right := s.cfg.Viewport.Width - 100
	s.hud = hudWidgets{
		score: d.CreateText(16, 16, scoreText(0), TextStyle{Color: core.ColorWhite}),
		gems:  d.CreateText(16, 48, gemsText(0), TextStyle{Color: core.ColorWhite}),
		best:  d.CreateText(16, 80, bestText(s.highScore), TextStyle{Color: core.ColorWhite}),
		shop:  d.CreateText(right, 20, "SHOP", TextStyle{Color: core.ColorCyan, Tap: core.ActionShop}),
		mute:  d.CreateText(right, 60, muteText(s.muted), TextStyle{Color: core.ColorWhite, Tap: core.ActionMute}),
		live:  true,
	}
}

func (s *Session) destroyHUD() {
	if !s.hud.live {
		return
	}
	destroyAll(s.deps.Display, []Handle{s.hud.score, s.hud.gems, s.hud.best, s.hud.shop, s.hud.mute})
	s.hud = hudWidgets{}
}

func destroyAll(d Display, handles []Handle) {
	for _, h := range handles {
		d.Destroy(h)
	}
}

func scoreText(n int) string { return fmt.Sprintf("Score: %d", n) }
func gemsText(n int) string  { return fmt.Sprintf("Gems: %d", n) }
func bestText(n int) string  { return fmt.Sprintf("High Score: %d", n) }

func muteText(muted bool) string {
	if muted {
		return "[MUTED]"
	}
	return "[SOUND]"
}
