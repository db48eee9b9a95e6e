package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 20x6", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '@', ColorBrightCyan)
	c := s.GetCell(3, 4)
	if c.Rune != '@' || c.Color != ColorBrightCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected '@' bright-cyan", c)
	}

	s.Set(3, 4, '#')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	// Out of bounds is silent.
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(0, 100, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextColoredClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "Hello", ColorYellow)

	if s.Row(0) != "     Hel" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorYellow {
		t.Error("clipped text should keep its color")
	}
}

func TestScreenDrawTextCenteredUnicode(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "♥♥")

	if s.Get(4, 0) != '♥' || s.Get(5, 0) != '♥' {
		t.Errorf("centered multi-byte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != want || c.Color != ColorGray {
			t.Errorf("corner %v = %+v, expected %q gray", pos, c, want)
		}
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1))
	if s.Get(0, 0) != ' ' {
		t.Error("1x1 box should not be drawn")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '=', ColorBrown)
	s.DrawVLine(0, 3, 4, '|', ColorGray)

	if got := s.Row(2); got != "  =====   " {
		t.Errorf("Row(2) = %q", got)
	}
	for y := 3; y < 7; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (0, %d)", y)
		}
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive shrinking, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if s.GetCell(1, 0).Color != ColorGreen {
		t.Error("color should survive enlarging")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AB")
	s.DrawText(0, 1, "CDE")

	if got := s.String(); got != "AB \nCDE" {
		t.Errorf("String() = %q", got)
	}
}

func TestColorNamesRoundTrip(t *testing.T) {
	c, ok := ParseColor("orange")
	if !ok || c != ColorOrange {
		t.Errorf("ParseColor(orange) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown color should not parse")
	}
}

func TestScreenBackdropClearedWithCells(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetBackdrop(ColorBrown)
	if s.Backdrop() != ColorBrown {
		t.Fatalf("Backdrop() = %v, want brown", s.Backdrop())
	}

	s.Clear()
	if s.Backdrop() != ColorDefault {
		t.Errorf("Clear should reset the backdrop, got %v", s.Backdrop())
	}
}
