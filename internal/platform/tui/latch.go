package tui

import "github.com/vovakirdan/emberghost/internal/core"

// InputLatch turns terminal key presses into per-tick input frames.
// Terminals report presses and auto-repeats but never releases, so a held
// action stays set for holdTicks after its last press. One-shot actions
// are seen by exactly one tick.
type InputLatch struct {
	holdTicks int
	held      map[core.Action]int
	frame     core.InputFrame
}

// NewInputLatch creates a latch that keeps held actions for holdTicks.
func NewInputLatch(holdTicks int) *InputLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &InputLatch{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		frame:     core.NewInputFrame(),
	}
}

// Press records a key press. Pressing a direction releases the opposite one.
func (l *InputLatch) Press(a core.Action) {
	l.frame.Set(a)
	if a.IsOneShot() {
		return
	}
	switch a {
	case core.ActionLeft:
		l.release(core.ActionRight)
	case core.ActionRight:
		l.release(core.ActionLeft)
	}
	l.held[a] = l.holdTicks
}

func (l *InputLatch) release(a core.Action) {
	delete(l.held, a)
	l.frame.Unset(a)
}

// Frame returns the input for the current tick.
func (l *InputLatch) Frame() core.InputFrame {
	return l.frame.Clone()
}

// Advance ends the tick: one-shots are dropped and holds count down.
func (l *InputLatch) Advance() {
	l.frame.ClearOneShots()
	for a, n := range l.held {
		if n <= 1 {
			l.release(a)
			continue
		}
		l.held[a] = n - 1
	}
}

// Reset releases everything.
func (l *InputLatch) Reset() {
	l.frame.Clear()
	clear(l.held)
}
