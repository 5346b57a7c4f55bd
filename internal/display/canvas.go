package display

import (
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

type widgetKind int

const (
	kindText widgetKind = iota
	kindShape
)

type widget struct {
	kind  widgetKind
	x, y  int
	text  string
	rect  core.Rect
	style runner.TextStyle
	shape runner.ShapeStyle
}

type tapRegion struct {
	area   core.Rect
	action core.Action
}

// Canvas is the widget store behind runner.Display. Widgets are drawn in
// creation order, so later widgets cover earlier ones.
type Canvas struct {
	widgets map[runner.Handle]*widget
	next    runner.Handle
	taps    []tapRegion
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{widgets: make(map[runner.Handle]*widget)}
}

// CreateText adds a text widget anchored at world (x, y).
func (c *Canvas) CreateText(x, y int, text string, style runner.TextStyle) runner.Handle {
	c.next++
	c.widgets[c.next] = &widget{kind: kindText, x: x, y: y, text: text, style: style}
	return c.next
}

// CreateShape adds a rectangle widget.
func (c *Canvas) CreateShape(r core.Rect, style runner.ShapeStyle) runner.Handle {
	c.next++
	c.widgets[c.next] = &widget{kind: kindShape, rect: r, shape: style}
	return c.next
}

// SetText replaces the text of a text widget. Unknown handles are ignored.
func (c *Canvas) SetText(h runner.Handle, text string) {
	if w, ok := c.widgets[h]; ok && w.kind == kindText {
		w.text = text
	}
}

// Destroy removes a widget. Unknown handles are ignored.
func (c *Canvas) Destroy(h runner.Handle) {
	delete(c.widgets, h)
}

// Len returns the number of live widgets.
func (c *Canvas) Len() int {
	return len(c.widgets)
}

// Text returns the current text of a widget.
func (c *Canvas) Text(h runner.Handle) (string, bool) {
	w, ok := c.widgets[h]
	if !ok || w.kind != kindText {
		return "", false
	}
	return w.text, true
}

// Draw renders every widget onto screen and records the tappable regions
// for HitTest.
func (c *Canvas) Draw(screen *core.Screen, vp Viewport) {
	c.taps = c.taps[:0]

	handles := make([]runner.Handle, 0, len(c.widgets))
	for h := range c.widgets {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		w := c.widgets[h]
		switch w.kind {
		case kindShape:
			r := vp.RectToScreen(w.rect)
			screen.DrawRect(r, w.shape.Fill, w.shape.Color)
			if w.shape.Border {
				screen.DrawBox(r, w.shape.Color)
			}
		case kindText:
			sx, sy := vp.ToScreen(w.x, w.y)
			n := utf8.RuneCountInString(w.text)
			if w.style.Centered {
				sx -= n / 2
			}
			screen.DrawText(sx, sy, w.text, w.style.Color)
			if w.style.Tap != core.ActionNone {
				c.taps = append(c.taps, tapRegion{area: core.NewRect(sx, sy, n, 1), action: w.style.Tap})
			}
		}
	}
}

// HitTest reports the tap action of the topmost tappable widget under
// cell (sx, sy) as of the last Draw.
func (c *Canvas) HitTest(sx, sy int) (core.Action, bool) {
	for i := len(c.taps) - 1; i >= 0; i-- {
		if c.taps[i].area.Contains(sx, sy) {
			return c.taps[i].action, true
		}
	}
	return core.ActionNone, false
}
