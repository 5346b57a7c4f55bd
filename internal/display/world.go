package display

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Playfield glyphs.
const (
	PlayerGlyph   = '█'
	ObstacleGlyph = '▓'
	PickupGlyph   = '◆'
	GroundGlyph   = '─'
)

// DrawField renders the player and every live entity.
func DrawField(screen *core.Screen, vp Viewport, player runner.Player, field *runner.EntityField) {
	for _, o := range field.Obstacles() {
		screen.DrawRect(vp.RectToScreen(o.Bounds()), ObstacleGlyph, core.ColorRed)
	}
	for _, p := range field.Pickups() {
		screen.DrawRect(vp.RectToScreen(p.Bounds()), PickupGlyph, core.ColorYellow)
	}
	screen.DrawRect(vp.RectToScreen(player.Bounds()), PlayerGlyph, core.ColorCyan)
}

// Compose draws a complete frame: the playfield while a run is on screen,
// then the widgets on top.
func Compose(screen *core.Screen, vp Viewport, d *runner.Director, canvas *Canvas) {
	screen.Clear()

	if d.Current() == runner.SceneGame && d.Session().State() != runner.StateReady {
		DrawField(screen, vp, d.Session().Player(), d.Session().Field())
	}

	canvas.Draw(screen, vp)
}
