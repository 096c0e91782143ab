package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neondrive/internal/core"
)

// styleCache maps hex colors to lipgloss styles, built on first use.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(color core.Color) lipgloss.Style {
	if st, ok := c[color]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if color != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(color))
	}
	c[color] = st
	return st
}

var cellStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
