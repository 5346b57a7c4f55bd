package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Handle identifies a widget created on a Display.
type Handle int

// TextStyle controls how a text widget is drawn.
type TextStyle struct {
	Color    core.Color
	Centered bool        // Anchor at the text's centre instead of its left edge
	Tap      core.Action // Action raised when the widget is clicked (ActionNone = not tappable)
}

// ShapeStyle controls how a shape widget is drawn.
type ShapeStyle struct {
	Fill   rune
	Color  core.Color
	Border bool
}

// Display is the sink the runner writes its widgets to. Positions are world
// units. The runner never reads anything back from it.
type Display interface {
	CreateText(x, y int, text string, style TextStyle) Handle
	CreateShape(r core.Rect, style ShapeStyle) Handle
	SetText(h Handle, text string)
	Destroy(h Handle)
}

type nopDisplay struct{ next Handle }

func (d *nopDisplay) CreateText(int, int, string, TextStyle) Handle { d.next++; return d.next }
func (d *nopDisplay) CreateShape(core.Rect, ShapeStyle) Handle      { d.next++; return d.next }
func (d *nopDisplay) SetText(Handle, string)                        {}
func (d *nopDisplay) Destroy(Handle)                                {}
