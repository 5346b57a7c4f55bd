// Package display renders the runner's widgets and entities onto a
// core.Screen. World coordinates (the fixed 800x600 playfield) are scaled
// to whatever terminal size the host reports.
package display

import "github.com/vovakirdan/tui-runner/internal/core"

// Viewport maps world coordinates onto screen cells.
type Viewport struct {
	WorldW, WorldH   int
	ScreenW, ScreenH int
}

// NewViewport creates a mapping from a worldW x worldH playfield onto a
// screenW x screenH cell grid.
func NewViewport(worldW, worldH, screenW, screenH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

// ToScreen converts a world point to a cell.
func (v Viewport) ToScreen(wx, wy int) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return floorDiv(wx*v.ScreenW, v.WorldW), floorDiv(wy*v.ScreenH, v.WorldH)
}

// RectToScreen converts a world rectangle to cells. A non-empty rectangle
// always covers at least one cell.
func (v Viewport) RectToScreen(r core.Rect) core.Rect {
	x0, y0 := v.ToScreen(r.X, r.Y)
	x1, y1 := v.ToScreen(r.Right(), r.Bottom())
	w, h := x1-x0, y1-y0
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return core.NewRect(x0, y0, w, h)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
