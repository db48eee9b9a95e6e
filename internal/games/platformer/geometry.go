package platformer

import (
	"errors"
	"math"
)

// ErrInvalidSize is returned when a body or platform is built with a
// non-positive size.
var ErrInvalidSize = errors.New("invalid size")

// Hazard and landing constants. They define how the game feels, and several
// edge cases depend on the exact values.
const (
	HazardHeight   = 32.0 // Height of a thorn zone above or below its platform
	landingInset   = 5.0  // Horizontal inset when testing a landing
	landingDepth   = 15.0 // Feet may already be this far below a platform top
	landingReach   = 5.0  // Projected feet must reach this far above a platform top
	stompInset     = 15.0 // Horizontal inset for a jump-on-top
	stompBand      = 20.0 // Feet must be within this band below an enemy's top
	sideHitPadding = 5.0  // Both boxes shrink by this much for a side hit
)

// Box is an axis-aligned rectangle in world units. Y grows downward.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Inset shrinks the box by dx on the left and right and dy on the top and
// bottom. A box shrunk past zero becomes empty.
func (b Box) Inset(dx, dy float64) Box {
	return Box{
		X: b.X + dx,
		Y: b.Y + dy,
		W: math.Max(0, b.W-2*dx),
		H: math.Max(0, b.H-2*dy),
	}
}

// Bounded is anything that occupies a box in the world.
type Bounded interface {
	Bounds() Box
}

// Overlaps reports whether two boxes intersect. Touching edges do not overlap.
func Overlaps(a, b Box) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// OverlapsPadded shrinks both boxes by pad before testing overlap.
func OverlapsPadded(a, b Box, pad float64) bool {
	return Overlaps(a.Inset(pad, pad), b.Inset(pad, pad))
}

// SpanOverlaps reports whether body's horizontal span overlaps surface's
// span narrowed by inset on both sides.
func SpanOverlaps(body, surface Box, inset float64) bool {
	return body.Right() > surface.X+inset && body.X < surface.Right()-inset
}

// IsSupported reports whether body is resting on top of surface: the spans
// overlap with the given inset and the gap between body's bottom and the
// surface top is within ±tolerance.
func IsSupported(body, surface Box, inset, tolerance float64) bool {
	if !SpanOverlaps(body, surface, inset) {
		return false
	}
	return math.Abs(surface.Y-body.Bottom()) <= tolerance
}

// Landing reports whether a body moving with vertical velocity vy is landing
// on surface this tick: it is not rising, its feet are no deeper than
// landingDepth below the top, and its feet projected by vy reach the top.
func Landing(body Box, vy float64, surface Box) bool {
	if vy < 0 {
		return false
	}
	feet := body.Bottom()
	if feet > surface.Y+landingDepth || feet+vy < surface.Y-landingReach {
		return false
	}
	return SpanOverlaps(body, surface, landingInset)
}

// HazardZone returns the thorn rectangle of a platform: HazardHeight units
// tall, directly above the platform when the thorns face up and directly
// below it otherwise. ok is false for platforms without thorns.
func HazardZone(p Platform) (zone Box, ok bool) {
	if !p.HasThorns {
		return Box{}, false
	}
	if p.ThornsOnTop {
		return Box{X: p.X, Y: p.Y - HazardHeight, W: p.W, H: HazardHeight}, true
	}
	return Box{X: p.X, Y: p.Y + p.H, W: p.W, H: HazardHeight}, true
}
