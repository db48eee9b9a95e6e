package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewportToCell(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 1, 80, 30))

	tests := []struct {
		name   string
		wx, wy float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 1},
		{"one cell in", 10, 20, 1, 2},
		{"far corner", 799, 599, 79, 30},
		{"past the world", 800, 600, 80, 31},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.ToCell(tc.wx, tc.wy)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.wx, tc.wy, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportRectToCellsNeverEmpty(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 40, 12))

	r := v.RectToCells(100, 100, 2, 2)
	if r.W < 1 || r.H < 1 {
		t.Errorf("RectToCells() produced empty rect %+v", r)
	}

	ground := v.RectToCells(0, 550, 800, 32)
	if ground.W != 40 {
		t.Errorf("ground width = %d, expected 40", ground.W)
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}

	tests := []struct {
		seconds  float64
		expected int
	}{
		{1.4, 84},
		{0.3, 18},
		{0, 0},
		{0.001, 1},
	}

	for _, tc := range tests {
		if got := cfg.TicksFor(tc.seconds); got != tc.expected {
			t.Errorf("TicksFor(%v) = %d, expected %d", tc.seconds, got, tc.expected)
		}
	}

	if got := (RuntimeConfig{}).TicksFor(1); got != 60 {
		t.Errorf("TicksFor with zero rate = %d, expected 60", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
}

func TestInputFrameOneShots(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionJump)
	f.Set(ActionPause)

	f.ClearOneShots()

	if !f.Has(ActionLeft) {
		t.Error("held action Left should survive ClearOneShots")
	}
	if f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("one-shot actions should be cleared")
	}

	clone := f.Clone()
	f.Clear()
	if !clone.Has(ActionLeft) {
		t.Error("clone should not share storage with the original")
	}
}
