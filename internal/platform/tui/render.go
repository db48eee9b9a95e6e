package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/emberghost/internal/core"
)

// foregrounds maps core.Color to ANSI 256-color codes for cell text.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
	core.ColorDim:           "238",
}

// backdrops are dark shades of a level color, dark enough that every
// foreground above stays readable on them.
var backdrops = map[core.Color]lipgloss.Color{
	core.ColorRed:     "52",
	core.ColorGreen:   "22",
	core.ColorBlue:    "17",
	core.ColorMagenta: "53",
	core.ColorCyan:    "23",
	core.ColorBrown:   "58",
	core.ColorOrange:  "94",
	core.ColorGray:    "236",
	core.ColorDim:     "234",
}

// cellStyle returns the style for text of color fg over backdrop bg.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := foregrounds[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := backdrops[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	bg := s.Backdrop()

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			sb.WriteString(cellStyle(color, bg).Render(run.String()))
		}
	}
	return sb.String()
}
