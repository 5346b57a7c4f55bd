package display

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func TestCanvasLifecycle(t *testing.T) {
	c := NewCanvas()

	a := c.CreateText(10, 10, "hello", runner.TextStyle{})
	b := c.CreateShape(core.NewRect(0, 0, 10, 10), runner.ShapeStyle{Fill: '#'})
	if a == b {
		t.Fatal("handles must be unique")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", c.Len())
	}

	c.SetText(a, "world")
	if got, ok := c.Text(a); !ok || got != "world" {
		t.Errorf("Text() = %q, %v", got, ok)
	}
	if _, ok := c.Text(b); ok {
		t.Error("shapes have no text")
	}

	c.Destroy(a)
	c.Destroy(a) // idempotent
	c.SetText(a, "ignored")
	if c.Len() != 1 {
		t.Errorf("Len() = %d after destroy, expected 1", c.Len())
	}
}

func TestCanvasDraw(t *testing.T) {
	c := NewCanvas()
	screen := core.NewScreen(80, 24)
	vp := NewViewport(800, 600, 80, 24)

	c.CreateText(400, 300, "Game Over", runner.TextStyle{Color: core.ColorRed, Centered: true})
	c.CreateText(0, 0, "Score: 3", runner.TextStyle{})
	c.Draw(screen, vp)

	if row := screen.Row(12); !strings.Contains(row, "Game Over") {
		t.Errorf("centred text missing from row 12: %q", row)
	}
	if got := screen.GetCell(36, 12); got.Rune != 'G' || got.Color != core.ColorRed {
		t.Errorf("centred text should start at column 36, got %+v", got)
	}
	if row := screen.Row(0); !strings.HasPrefix(row, "Score: 3") {
		t.Errorf("row 0 = %q", row)
	}
}

func TestCanvasDrawOrder(t *testing.T) {
	c := NewCanvas()
	screen := core.NewScreen(80, 24)
	vp := NewViewport(800, 600, 80, 24)

	c.CreateText(400, 300, "X", runner.TextStyle{})
	c.CreateShape(core.RectAround(400, 300, 200, 200), runner.ShapeStyle{Fill: '.'})
	c.Draw(screen, vp)

	if got := screen.Get(40, 12); got != '.' {
		t.Errorf("later shape should cover earlier text, got %q", got)
	}
}

func TestCanvasHitTest(t *testing.T) {
	c := NewCanvas()
	screen := core.NewScreen(80, 24)
	vp := NewViewport(800, 600, 80, 24)

	c.CreateText(400, 300, "PLAY", runner.TextStyle{Centered: true, Tap: core.ActionConfirm})
	c.CreateText(700, 20, "SHOP", runner.TextStyle{Tap: core.ActionShop})
	c.CreateText(16, 16, "Score: 0", runner.TextStyle{})

	if _, ok := c.HitTest(40, 12); ok {
		t.Error("nothing is tappable before the first Draw")
	}
	c.Draw(screen, vp)

	tests := []struct {
		x, y int
		want core.Action
		ok   bool
	}{
		{38, 12, core.ActionConfirm, true},
		{41, 12, core.ActionConfirm, true},
		{42, 12, core.ActionNone, false},
		{70, 0, core.ActionShop, true},
		{73, 0, core.ActionShop, true},
		{2, 0, core.ActionNone, false},
	}
	for _, tc := range tests {
		got, ok := c.HitTest(tc.x, tc.y)
		if got != tc.want || ok != tc.ok {
			t.Errorf("HitTest(%d,%d) = %v,%v expected %v,%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanvasImplementsDisplay(t *testing.T) {
	var _ runner.Display = NewCanvas()
}
