package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbot/internal/core"
)

// ANSI color codes for the scene palette.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
}

// glyphKind classifies what a cell shows, which decides its emphasis.
type glyphKind uint8

const (
	glyphPlain glyphKind = iota
	glyphBrick
	glyphRobot
	glyphFloor
)

func kindOf(r rune) glyphKind {
	switch r {
	case brickRune:
		return glyphBrick
	case robotRune:
		return glyphRobot
	case floorRune:
		return glyphFloor
	default:
		return glyphPlain
	}
}

// cellStyle is the styling key of a run of cells.
type cellStyle struct {
	color core.Color
	kind  glyphKind
}

func cellStyleOf(c core.Cell) cellStyle {
	if c.Rune == ' ' {
		return cellStyle{}
	}
	return cellStyle{color: c.Color, kind: kindOf(c.Rune)}
}

// style builds the lipgloss style for a run. The robot is bold and the floor
// markers are faint so bricks stay the dominant shape.
func (cs cellStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if code, ok := colorCodes[cs.color]; ok {
		st = st.Foreground(code)
	}
	switch cs.kind {
	case glyphRobot:
		st = st.Bold(true)
	case glyphFloor:
		st = st.Faint(true)
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a style are emitted as one run; blank runs are
// written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			key := cellStyleOf(s.GetCell(x, y))
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cellStyleOf(cell) != key {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if key == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(key.style().Render(run.String()))
		}
	}
	return sb.String()
}
