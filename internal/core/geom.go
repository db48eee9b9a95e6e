// Package core provides the engine-neutral types shared by games and the
// terminal platform: screen cells, input frames, and runtime settings.
// It has no external dependencies so game logic stays pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a continuous world rectangle onto a block of screen cells.
// Each axis scales independently, so a 4:3 world fills any terminal.
type Viewport struct {
	WorldW, WorldH float64
	Cells          Rect
}

// NewViewport builds a viewport placing a worldW x worldH area into cells.
func NewViewport(worldW, worldH float64, cells Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cells: cells}
}

// ToCell converts a world point to a screen cell.
func (v Viewport) ToCell(wx, wy float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Cells.X, v.Cells.Y
	}
	cx := v.Cells.X + int(math.Floor(wx*float64(v.Cells.W)/v.WorldW))
	cy := v.Cells.Y + int(math.Floor(wy*float64(v.Cells.H)/v.WorldH))
	return cx, cy
}

// RectToCells converts a world rectangle into the smallest cell rectangle
// covering it. Non-empty world rectangles always cover at least one cell.
func (v Viewport) RectToCells(wx, wy, ww, wh float64) Rect {
	x0, y0 := v.ToCell(wx, wy)
	x1, y1 := v.ToCell(wx+ww, wy+wh)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
